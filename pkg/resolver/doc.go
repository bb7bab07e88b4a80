// Package resolver maps a build target to the variables substituted into
// the recipe template.
//
// Rules live in two lookup tables, one keyed on hardware version and one on
// suite, so each derived value can be audited against a single row. A few
// values are constant for every target and a few come from options that
// default to off (backports, the firmware package rename).
//
// The bullseye row reports an empty legacy firmware component even though
// bullseye is the suite that still uses "non-free". This mirrors the
// behaviour of existing recipes and is kept as-is.
package resolver
