// Package files discovers the report workbooks in the input directory.
//
// Example usage:
//
//	discovery := files.NewDiscovery(paths.BaseDir)
//	entries, err := discovery.ListFiles(paths.InputDir)
package files
