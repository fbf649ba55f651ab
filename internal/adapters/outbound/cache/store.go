package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Store is an in-memory LRU implementation of domain.ResultCache. A zero
// capacity yields a store that never retains anything.
type Store struct {
	lru *lru.Cache[string, string]
}

// New creates a store holding at most size outputs.
func New(size int) (*Store, error) {
	if size <= 0 {
		return &Store{}, nil
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Store{lru: c}, nil
}

func (s *Store) Get(key string) (string, bool) {
	if s.lru == nil {
		return "", false
	}
	return s.lru.Get(key)
}

func (s *Store) Put(key, output string) {
	if s.lru == nil {
		return
	}
	s.lru.Add(key, output)
}

// Len reports how many outputs are held.
func (s *Store) Len() int {
	if s.lru == nil {
		return 0
	}
	return s.lru.Len()
}
