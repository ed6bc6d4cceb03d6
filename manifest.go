package scoped

// Scoped classes replace explicit argument passing, which makes it easy to
// grow interfaces with hidden knobs. The manifest convention counters
// that: a module owner advertises the classes an API consults by declaring
// a manifest type next to the API and associating it with a subject type.
// Users fetch the manifest through ManifestOf and bind only the classes it
// advertises.
//
//	// Owner side.
//	type Classify struct{}
//
//	type ClassifyManifest struct {
//		Threshold *scoped.Class[int]
//	}
//
//	func (Classify) ScopedManifest() ClassifyManifest {
//		return ClassifyManifest{Threshold: threshold}
//	}
//
//	// User side.
//	m := scoped.ManifestOf[ClassifyManifest, Classify]()
//	b := m.Threshold.Bind(4)
//	defer b.End()
//
// The association carries no runtime state: looking up a subject that
// declares no manifest does not compile, which is the entire point.

// Declarer is satisfied by subject types that advertise a manifest of type
// M. Subjects are usually empty structs standing in for a function or a
// service whose scoped interface is being documented.
type Declarer[M any] interface {
	ScopedManifest() M
}

// ManifestOf resolves the manifest advertised by subject S. The subject is
// never instantiated for real: only its declaration matters.
func ManifestOf[M any, S Declarer[M]]() M {
	var subject S
	return subject.ScopedManifest()
}
