package recording

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// RecordStore mantém a sequência canônica de registros de venda
type RecordStore interface {
	Add(input domain.SalesRecordInput) (domain.SalesRecord, error)
	Update(id int, input domain.SalesRecordInput) (domain.SalesRecord, error)
	Delete(id int) error
	ReplaceAll(records []domain.SalesRecord) ([]domain.SalesRecord, error)
	Get(id int) (domain.SalesRecord, error)
	List() []domain.SalesRecord
	Revision() string
}

// Store guarda os registros em memória com um único escritor por vez
type Store struct {
	mu       sync.RWMutex
	records  []domain.SalesRecord
	nextID   int
	revision string
}

func NewStore() RecordStore {
	return &Store{
		records: make([]domain.SalesRecord, 0),
		nextID:  1,
	}
}

func (s *Store) Add(input domain.SalesRecordInput) (domain.SalesRecord, error) {
	input, err := Validate(input)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	revision, err := newRevision()
	if err != nil {
		return domain.SalesRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := input.ToRecord(s.nextID)
	s.nextID++
	s.records = append(s.records, record)
	s.revision = revision

	log.L.WithFields(log.Fields{
		"record_id": record.ID,
		"product":   record.Product,
	}).Debug("records: registro adicionado")

	return record, nil
}

func (s *Store) Update(id int, input domain.SalesRecordInput) (domain.SalesRecord, error) {
	input, err := Validate(input)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	revision, err := newRevision()
	if err != nil {
		return domain.SalesRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.SalesRecord{}, NewRecordErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, id, "")
	}

	// O registro é substituído, nunca alterado no lugar
	record := input.ToRecord(id)
	updated := make([]domain.SalesRecord, len(s.records))
	copy(updated, s.records)
	updated[idx] = record
	s.records = updated
	s.revision = revision

	log.L.WithField("record_id", id).Debug("records: registro atualizado")

	return record, nil
}

func (s *Store) Delete(id int) error {
	revision, err := newRevision()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return NewRecordErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, id, "")
	}

	remaining := make([]domain.SalesRecord, 0, len(s.records)-1)
	remaining = append(remaining, s.records[:idx]...)
	remaining = append(remaining, s.records[idx+1:]...)
	s.records = remaining
	s.revision = revision

	log.L.WithField("record_id", id).Debug("records: registro removido")

	return nil
}

// ReplaceAll troca todos os registros. IDs informados são preservados e
// precisam ser únicos; ID zero recebe um novo identificador.
func (s *Store) ReplaceAll(records []domain.SalesRecord) ([]domain.SalesRecord, error) {
	seen := make(map[int]bool, len(records))
	validated := make([]domain.SalesRecord, 0, len(records))
	maxID := 0

	for i, record := range records {
		if record.ID < 0 {
			return nil, NewRecordErrorWithID(ErrInvalidID, apiErrors.ErrInvalidValue, record.ID, fmt.Sprintf("posição %d", i))
		}
		if record.ID > 0 {
			if seen[record.ID] {
				return nil, NewRecordErrorWithID(ErrDuplicateID, apiErrors.ErrDuplicateID, record.ID, fmt.Sprintf("posição %d", i))
			}
			seen[record.ID] = true
			maxID = max(maxID, record.ID)
		}

		input, err := Validate(record.Input())
		if err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				recErr.RecordID = record.ID
				if recErr.Details == "" {
					recErr.Details = fmt.Sprintf("posição %d", i)
				} else {
					recErr.Details = fmt.Sprintf("posição %d: %s", i, recErr.Details)
				}
			}
			return nil, err
		}
		validated = append(validated, input.ToRecord(record.ID))
	}

	revision, err := newRevision()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Um ID informado precisa existir hoje ou ainda não ter sido emitido.
	// IDs de registros removidos não voltam.
	current := make(map[int]bool, len(s.records))
	for _, record := range s.records {
		current[record.ID] = true
	}
	for i, record := range validated {
		if record.ID > 0 && record.ID < s.nextID && !current[record.ID] {
			return nil, NewRecordErrorWithID(ErrInvalidID, apiErrors.ErrInvalidValue, record.ID,
				fmt.Sprintf("posição %d: ID de registro removido", i))
		}
	}

	// O contador nunca volta, então IDs antigos não são reutilizados
	next := max(s.nextID, maxID+1)
	for i := range validated {
		if validated[i].ID == 0 {
			validated[i].ID = next
			next++
		}
	}
	s.nextID = next
	s.records = validated
	s.revision = revision

	log.L.WithField("records", len(validated)).Info("records: registros substituídos")

	return cloneRecords(validated), nil
}

func (s *Store) Get(id int) (domain.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.SalesRecord{}, NewRecordErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, id, "")
	}
	return s.records[idx], nil
}

// List devolve uma cópia dos registros na ordem de inserção
func (s *Store) List() []domain.SalesRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRecords(s.records)
}

func (s *Store) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

func (s *Store) indexOf(id int) int {
	for i, record := range s.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func cloneRecords(records []domain.SalesRecord) []domain.SalesRecord {
	out := make([]domain.SalesRecord, len(records))
	copy(out, records)
	return out
}

func newRevision() (string, error) {
	revision, err := utils.GenerateRevision()
	if err != nil {
		return "", NewRecordError(ErrGenerateRevision, apiErrors.ErrInternalServer, err.Error())
	}
	return revision, nil
}
