package fontload

import (
	"log/slog"
	"path"
)

// dispatch issues the load requests for paths and returns the handles.
//
// On a target with folder loading and no file list, the whole folder is
// requested with a single LoadFolder call. Otherwise every listed file is
// requested with Load, in list order. A restricted target without a file
// list loads nothing.
func dispatch(store AssetStore, paths *AssetPaths, target Target, logger *slog.Logger) HandleSet {
	folder := paths.Folder()
	files, listed := paths.Files()

	if target.FolderLoading && !listed {
		logger.Debug("loading font folder", "folder", folder)
		return FolderHandle{Path: folder, Handle: store.LoadFolder(folder)}
	}

	if !listed {
		logger.Warn("folder loading unavailable and no font files listed", "folder", folder)
	} else if len(files) == 0 && !target.FolderLoading {
		logger.Info("font file list is empty", "folder", folder)
	}

	handles := make(FileHandles, 0, len(files))
	for _, f := range files {
		p := path.Join(folder, f)
		handles = append(handles, FileHandle{Entry: f, Path: p, Handle: store.Load(p)})
	}
	logger.Debug("loading font files", "folder", folder, "files", len(handles))
	return handles
}
