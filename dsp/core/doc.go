// Package core holds the small pieces shared by the detector packages:
// level conversions, numeric guards and processor configuration.
package core
