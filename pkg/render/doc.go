// Package render substitutes placeholders in a recipe template.
//
// A template is opaque text. Rendering runs three passes over it:
//
//  1. Scalar markers (for example __ARCH__) are replaced everywhere they occur.
//  2. Block markers (for example __EXTRA_CHROOT_SHELL_CMDS__) standing alone on
//     a line are replaced by zero or more lines carrying the marker line's
//     indentation. Only the first such line is replaced.
//  3. Lines left holding only whitespace, or only an indented "-" list bullet,
//     are dropped so absent optional values do not leave holes in the YAML.
//
// The output always ends with exactly one newline.
package render
