package repository

// Model is the capability set every persisted record exposes to the
// generic CRUD flow: a database identity and an explicit field map
// used for JSON serialization.
type Model interface {
	PrimaryID() uint
	Serialize() map[string]interface{}
}

// Activatable is implemented by records carrying an active flag that
// can be soft-disabled and re-enabled.
type Activatable interface {
	Model
	SetActive(active bool)
}

// Repository is the persistence access contract, one instantiation per
// entity type. FindByID returns a utils.NotFoundError when no record
// matches; write operations return the backing store's error as-is and
// are atomic per call.
type Repository interface {
	FindAll() ([]Model, error)
	FindByID(id uint) (Model, error)
	Store(model Model) error
	Update(model Model) error
	Remove(model Model) error
}
