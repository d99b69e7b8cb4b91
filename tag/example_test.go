package tag_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/cachedir/tag"
)

func ExampleIsTagged() {
	dir, err := os.MkdirTemp("", "cachedir-example-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	tagged, err := tag.IsTagged(dir)
	fmt.Println(tagged, err)

	content := tag.Signature + "\n# This file is a cache directory tag.\n"
	if err := os.WriteFile(filepath.Join(dir, tag.Filename), []byte(content), 0o644); err != nil {
		panic(err)
	}

	tagged, err = tag.IsTagged(dir)
	fmt.Println(tagged, err)

	_, err = tag.IsTagged(filepath.Join(dir, "missing"))
	fmt.Println(errors.Is(err, tag.ErrNotFound))
	// Output:
	// false <nil>
	// true <nil>
	// true
}

func ExampleCheck() {
	dir, err := os.MkdirTemp("", "cachedir-example-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	for _, d := range []string{dir, filepath.Join(dir, "missing")} {
		switch r := tag.Check(d); r.Outcome {
		case tag.Tagged:
			fmt.Println("tagged")
		case tag.NotTagged:
			fmt.Println("not tagged")
		case tag.Failed:
			fmt.Println("failed:", r.Err.Kind)
		}
	}
	// Output:
	// not tagged
	// failed: not-found
}
