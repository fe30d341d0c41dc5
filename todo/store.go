package todo

import "sync"

type Todo struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Store is an in-memory ordered collection of todos. Every operation holds the lock for its
// whole duration, so it's safe to share a single instance between all the connections.
type Store struct {
	mu    sync.Mutex
	todos []Todo
	next  int
}

func NewStore() *Store {
	return new(Store)
}

// Add appends a new todo. Ids are taken from a counter which is never rewound, so they are
// unique for the whole lifetime of the store.
func (s *Store) Add(text string) Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := Todo{ID: s.next, Text: text}
	s.next++
	s.todos = append(s.todos, todo)

	return todo
}

// Delete removes every todo with the id, returning how many were removed.
func (s *Store) Delete(id int) (removed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.todos[:0]
	for _, todo := range s.todos {
		if todo.ID != id {
			kept = append(kept, todo)
		}
	}

	removed = len(s.todos) - len(kept)
	clear(s.todos[len(kept):])
	s.todos = kept

	return removed
}

// List returns a copy of the todos in the order they were added.
func (s *Store) List() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]Todo, 0, len(s.todos)), s.todos...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.todos)
}
