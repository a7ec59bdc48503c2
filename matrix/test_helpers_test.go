// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for containers/kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cayley/matrix"
	"github.com/katalvlaran/cayley/num"
)

// sample3x3 is the fixture used across algebra tests.
var sample3x3 = [][]float64{
	{1.2, 2.4, 3.5},
	{4.7, 6.1, 7.2},
	{7.0, 1.0, 7.5},
}

// MustNew BUILDS a *Dense from nested rows or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.New(data).
//   - Stage 2: t.Fatalf on error to abort the test early.
func MustNew[T num.Number](t *testing.T, data [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New(data)
	if err != nil {
		t.Fatalf("New(%v): %v", data, err)
	}

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense[T num.Number](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustGet READS m[i,j] or fails the test.
func MustGet[T num.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.Get(i, j)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m[i,j] = v or fails the test.
func MustSet[T num.Number](t *testing.T, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustRandom DRAWS a seeded r×c matrix in [lo, hi) or fails the test.
func MustRandom[T num.Number](t *testing.T, lo, hi T, r, c int, seed int64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Random(lo, hi, r, c, matrix.WithSeed(seed))
	if err != nil {
		t.Fatalf("Random(%v,%v,%d,%d): %v", lo, hi, r, c, err)
	}

	return m
}

// MustRow READS row r or fails the test.
func MustRow[T num.Number](t *testing.T, m *matrix.Dense[T], r int) []T {
	t.Helper()
	row, err := m.GetRow(r)
	if err != nil {
		t.Fatalf("GetRow(%d): %v", r, err)
	}

	return row
}
