// Package util provides the generic slice, map, and pointer helpers the
// hostkit libraries share, including the array-utility polyfills exposed
// to hosted scripting environments.
package util
