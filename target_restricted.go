//go:build js || wasip1

package fontload

// Folder enumeration is unavailable when assets are fetched over HTTP
// or from a sandboxed filesystem.
const folderLoadingSupported = false
