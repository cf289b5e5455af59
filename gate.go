package fontload

// Gate returns a predicate reporting whether cell currently reads Loaded.
// It is meant to be used as a run condition by host systems that need
// fonts, e.g. to skip drawing text until fonts are ready.
func Gate(cell *StateCell) func() bool {
	return func() bool {
		return cell.Load() == Loaded
	}
}
