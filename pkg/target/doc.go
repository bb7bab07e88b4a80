// Package target defines the build target of a recipe: the Raspberry Pi
// hardware version and the Debian suite the image is built from.
//
// Both values come from a fixed allow-list. Parsing rejects anything else
// with an INVALID_REQUEST structured error so the CLI can report a usage
// error before touching the filesystem.
//
//	t, err := target.New("4", "bookworm")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t.OutputName()) // raspi_4_bookworm.yaml
package target
