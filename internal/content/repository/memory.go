package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wolverinesfitness/backend/internal/content"
)

// Memory is an in-memory Store used by handler and repository tests.
type Memory[PT content.Section] struct {
	mu   sync.RWMutex
	docs map[string]PT
}

func NewMemory[PT content.Section]() *Memory[PT] {
	return &Memory[PT]{docs: make(map[string]PT)}
}

func (m *Memory[PT]) Insert(ctx context.Context, doc PT) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.DocID() == primitive.NilObjectID.Hex() {
		_ = doc.SetDocID(primitive.NewObjectID().Hex())
	}
	doc.Stamp(time.Now().UTC())
	m.docs[doc.DocID()] = doc
	return nil
}

func (m *Memory[PT]) Get(ctx context.Context, id string) (PT, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	var zero PT
	return zero, content.ErrNotFound
}

func (m *Memory[PT]) First(ctx context.Context) (PT, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var oldest PT
	found := false
	for _, d := range m.docs {
		if !found || d.Created().Before(oldest.Created()) {
			oldest = d
			found = true
		}
	}
	if !found {
		return oldest, content.ErrNotFound
	}
	return oldest, nil
}

func (m *Memory[PT]) List(ctx context.Context, q ListQuery) ([]PT, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []PT{}
	for _, d := range m.docs {
		if matches(d, q.Filter) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		fi, oi := out[i].SortKey()
		fj, oj := out[j].SortKey()
		if fi != fj {
			return fi
		}
		if oi != oj {
			return oi < oj
		}
		return out[i].Created().After(out[j].Created())
	})
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *Memory[PT]) Replace(ctx context.Context, doc PT) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[doc.DocID()]; !ok {
		return content.ErrNotFound
	}
	doc.Stamp(time.Now().UTC())
	m.docs[doc.DocID()] = doc
	return nil
}

func (m *Memory[PT]) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return content.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *Memory[PT]) Distinct(ctx context.Context, field string, q ListQuery) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := map[string]bool{}
	for _, d := range m.docs {
		if !matches(d, q.Filter) {
			continue
		}
		if v, ok := d.Field(field); ok {
			if s, ok := v.(string); ok && !seen[s] {
				seen[s] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

func (m *Memory[PT]) UnsetFlagExcept(ctx context.Context, flag, exceptID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, d := range m.docs {
		if id == exceptID {
			continue
		}
		if fc, ok := any(d).(FlagClearer); ok {
			fc.ClearFlag(flag)
		}
	}
	return nil
}

func matches(d content.Section, filter map[string]interface{}) bool {
	for k, want := range filter {
		got, ok := d.Field(k)
		if !ok {
			return false
		}
		if min, isMin := want.(Min); isMin {
			n, isInt := got.(int)
			if !isInt || n < min.Value {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}
