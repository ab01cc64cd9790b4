package directory

// ChangeNotifier fans out entity-change notifications so consumers know a
// cached listing went stale.
type ChangeNotifier interface {
	NotifyChanged(userID, entity, action, id string)
}
