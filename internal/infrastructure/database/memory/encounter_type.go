package memory

import (
	"context"
	"github.com/mufasadev/encounter-types/internal/domain/models"
	"github.com/mufasadev/encounter-types/internal/domain/repositories"
	apperrors "github.com/mufasadev/encounter-types/internal/errors"
	"sort"
	"sync"
	"time"
)

// EncounterTypeRepositoryImpl keeps encounter types in process memory.
// It enforces the same active-name backstop as the PostgreSQL schema.
type EncounterTypeRepositoryImpl struct {
	mu     sync.RWMutex
	nextID int64
	byUUID map[string]*models.EncounterType
	now    func() time.Time
}

func NewEncounterTypeRepositoryImpl() *EncounterTypeRepositoryImpl {
	return &EncounterTypeRepositoryImpl{
		byUUID: make(map[string]*models.EncounterType),
		now:    time.Now,
	}
}

var _ repositories.EncounterTypeRepository = (*EncounterTypeRepositoryImpl)(nil)

func (r *EncounterTypeRepositoryImpl) GetByName(_ context.Context, name string) (*models.EncounterType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.EncounterType
	for _, et := range r.sorted() {
		if et.Name != name {
			continue
		}
		if !et.Retired {
			return et.Clone(), nil
		}
		if found == nil {
			found = et
		}
	}
	if found == nil {
		return nil, nil
	}
	return found.Clone(), nil
}

func (r *EncounterTypeRepositoryImpl) GetByUUID(_ context.Context, uuid string) (*models.EncounterType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	et, ok := r.byUUID[uuid]
	if !ok {
		return nil, nil
	}
	return et.Clone(), nil
}

func (r *EncounterTypeRepositoryImpl) List(_ context.Context, includeRetired bool) ([]*models.EncounterType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.EncounterType, 0, len(r.byUUID))
	for _, et := range r.sorted() {
		if et.Retired && !includeRetired {
			continue
		}
		out = append(out, et.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *EncounterTypeRepositoryImpl) Create(_ context.Context, encounterType *models.EncounterType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUUID[encounterType.UUID]; exists {
		return apperrors.NewBadRequestError(apperrors.ErrEncounterTypeUUIDExists)
	}
	if err := r.checkActiveName(encounterType); err != nil {
		return err
	}

	r.nextID++
	encounterType.ID = r.nextID
	encounterType.DateCreated = r.now()
	r.byUUID[encounterType.UUID] = encounterType.Clone()
	return nil
}

func (r *EncounterTypeRepositoryImpl) Update(_ context.Context, encounterType *models.EncounterType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byUUID[encounterType.UUID]
	if !ok {
		return apperrors.NewNotFoundError(apperrors.ErrEncounterTypeNotFound)
	}
	if err := r.checkActiveName(encounterType); err != nil {
		return err
	}

	changed := r.now()
	encounterType.ID = existing.ID
	encounterType.DateCreated = existing.DateCreated
	encounterType.DateChanged = &changed
	r.byUUID[encounterType.UUID] = encounterType.Clone()
	return nil
}

func (r *EncounterTypeRepositoryImpl) ListActiveNameConflicts(_ context.Context) ([]repositories.NameConflictRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make(map[string][]string)
	for _, et := range r.sorted() {
		if et.Retired {
			continue
		}
		name := et.TrimmedName()
		groups[name] = append(groups[name], et.UUID)
	}

	rows := make([]repositories.NameConflictRow, 0)
	for name, uuids := range groups {
		if len(uuids) > 1 {
			rows = append(rows, repositories.NameConflictRow{Name: name, UUIDs: uuids})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// Put stores encounterType as-is, bypassing the name backstop. It exists to set up
// states only reachable through concurrent writers, such as two active records sharing a name.
func (r *EncounterTypeRepositoryImpl) Put(encounterType *models.EncounterType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if encounterType.ID == 0 {
		r.nextID++
		encounterType.ID = r.nextID
	}
	r.byUUID[encounterType.UUID] = encounterType.Clone()
}

func (r *EncounterTypeRepositoryImpl) checkActiveName(encounterType *models.EncounterType) error {
	if encounterType.Retired {
		return nil
	}
	name := encounterType.TrimmedName()
	for _, et := range r.byUUID {
		if et.UUID != encounterType.UUID && !et.Retired && et.TrimmedName() == name {
			return apperrors.NewDuplicateNameError(name)
		}
	}
	return nil
}

// sorted returns stored records in insertion order; callers hold the lock.
func (r *EncounterTypeRepositoryImpl) sorted() []*models.EncounterType {
	out := make([]*models.EncounterType, 0, len(r.byUUID))
	for _, et := range r.byUUID {
		out = append(out, et)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
