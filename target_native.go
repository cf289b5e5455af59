//go:build !js && !wasip1

package fontload

const folderLoadingSupported = true
