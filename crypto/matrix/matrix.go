// Copyright © 2024 Cipheritall
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"errors"

	"github.com/Cipheritall/crypto-primitives-sub006/crypto/group"
	"github.com/Cipheritall/crypto-primitives-sub006/crypto/hashing"
)

var (
	// ErrInconsistentRows is returned if the rows differ in size
	ErrInconsistentRows = errors.New("rows differ in size")
	// ErrBadDecomposition is returned if a vector cannot be arranged into the requested shape
	ErrBadDecomposition = errors.New("vector size does not match the requested dimensions")
)

// ZqMatrix is an immutable rectangular grid of ZqElements with flat row-major
// storage. Row and column accessors are views assembled on demand.
type ZqMatrix struct {
	group   *group.ZqGroup
	numRows int
	numCols int
	values  []*group.ZqElement
}

// NewZqMatrix builds a matrix from its rows. All rows must have the same size
// and share one group.
func NewZqMatrix(rows []*ZqVector) (*ZqMatrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyWithoutGroup
	}
	g := rows[0].Group()
	n := rows[0].Size()
	values := make([]*group.ZqElement, 0, len(rows)*n)
	for _, r := range rows {
		if !r.Group().Equal(g) {
			return nil, ErrDifferentGroups
		}
		if r.Size() != n {
			return nil, ErrInconsistentRows
		}
		values = append(values, r.elements...)
	}
	return &ZqMatrix{group: g, numRows: len(rows), numCols: n, values: values}, nil
}

// NewZqMatrixFromColumns builds a matrix from its columns.
func NewZqMatrixFromColumns(cols []*ZqVector) (*ZqMatrix, error) {
	byCols, err := NewZqMatrix(cols)
	if err != nil {
		return nil, err
	}
	return byCols.Transpose(), nil
}

// ZqMatrixFromVector arranges a vector of size n*m into an n x m matrix
// column by column: element (i, j) is v[j*n + i].
func ZqMatrixFromVector(v *ZqVector, n, m int) (*ZqMatrix, error) {
	if n <= 0 || m <= 0 || v.Size() != n*m {
		return nil, ErrBadDecomposition
	}
	values := make([]*group.ZqElement, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			values[i*m+j] = v.elements[j*n+i]
		}
	}
	return &ZqMatrix{group: v.Group(), numRows: n, numCols: m, values: values}, nil
}

// NumRows returns the number of rows.
func (m *ZqMatrix) NumRows() int {
	return m.numRows
}

// NumColumns returns the number of columns.
func (m *ZqMatrix) NumColumns() int {
	return m.numCols
}

// Group returns the common group.
func (m *ZqMatrix) Group() *group.ZqGroup {
	return m.group
}

// Get returns element (i, j), 0-indexed.
func (m *ZqMatrix) Get(i, j int) (*group.ZqElement, error) {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
		return nil, ErrIndexOutOfRange
	}
	return m.values[i*m.numCols+j], nil
}

// Row returns the i-th row as a vector.
func (m *ZqMatrix) Row(i int) (*ZqVector, error) {
	if i < 0 || i >= m.numRows {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*group.ZqElement, m.numCols)
	copy(out, m.values[i*m.numCols:(i+1)*m.numCols])
	return &ZqVector{group: m.group, elements: out}, nil
}

// Column returns the j-th column as a vector.
func (m *ZqMatrix) Column(j int) (*ZqVector, error) {
	if j < 0 || j >= m.numCols {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*group.ZqElement, m.numRows)
	for i := 0; i < m.numRows; i++ {
		out[i] = m.values[i*m.numCols+j]
	}
	return &ZqVector{group: m.group, elements: out}, nil
}

// Columns returns all columns in index order.
func (m *ZqMatrix) Columns() []*ZqVector {
	out := make([]*ZqVector, m.numCols)
	for j := 0; j < m.numCols; j++ {
		out[j], _ = m.Column(j)
	}
	return out
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *ZqMatrix) Transpose() *ZqMatrix {
	values := make([]*group.ZqElement, len(m.values))
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			values[j*m.numRows+i] = m.values[i*m.numCols+j]
		}
	}
	return &ZqMatrix{group: m.group, numRows: m.numCols, numCols: m.numRows, values: values}
}

// Equal reports element-wise equality.
func (m *ZqMatrix) Equal(other *ZqMatrix) bool {
	if other == nil || m.numRows != other.numRows || m.numCols != other.numCols || !m.group.Equal(other.group) {
		return false
	}
	for i := range m.values {
		if !m.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// HashableForm projects the matrix to the row-major list of its rows.
func (m *ZqMatrix) HashableForm() hashing.Hashable {
	rows := make(hashing.HashableList, m.numRows)
	for i := 0; i < m.numRows; i++ {
		row := make(hashing.HashableList, m.numCols)
		for j := 0; j < m.numCols; j++ {
			row[j] = m.values[i*m.numCols+j].HashableForm()
		}
		rows[i] = row
	}
	return rows
}

// GqMatrix is an immutable rectangular grid of GqElements with flat row-major
// storage.
type GqMatrix struct {
	group   *group.GqGroup
	numRows int
	numCols int
	values  []*group.GqElement
}

// NewGqMatrix builds a matrix from its rows.
func NewGqMatrix(rows []*GqVector) (*GqMatrix, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyWithoutGroup
	}
	g := rows[0].Group()
	n := rows[0].Size()
	values := make([]*group.GqElement, 0, len(rows)*n)
	for _, r := range rows {
		if !r.Group().Equal(g) {
			return nil, ErrDifferentGroups
		}
		if r.Size() != n {
			return nil, ErrInconsistentRows
		}
		values = append(values, r.elements...)
	}
	return &GqMatrix{group: g, numRows: len(rows), numCols: n, values: values}, nil
}

// NumRows returns the number of rows.
func (m *GqMatrix) NumRows() int {
	return m.numRows
}

// NumColumns returns the number of columns.
func (m *GqMatrix) NumColumns() int {
	return m.numCols
}

// Group returns the common group.
func (m *GqMatrix) Group() *group.GqGroup {
	return m.group
}

// Get returns element (i, j), 0-indexed.
func (m *GqMatrix) Get(i, j int) (*group.GqElement, error) {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
		return nil, ErrIndexOutOfRange
	}
	return m.values[i*m.numCols+j], nil
}

// Row returns the i-th row as a vector.
func (m *GqMatrix) Row(i int) (*GqVector, error) {
	if i < 0 || i >= m.numRows {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*group.GqElement, m.numCols)
	copy(out, m.values[i*m.numCols:(i+1)*m.numCols])
	return &GqVector{group: m.group, elements: out}, nil
}

// Column returns the j-th column as a vector.
func (m *GqMatrix) Column(j int) (*GqVector, error) {
	if j < 0 || j >= m.numCols {
		return nil, ErrIndexOutOfRange
	}
	out := make([]*group.GqElement, m.numRows)
	for i := 0; i < m.numRows; i++ {
		out[i] = m.values[i*m.numCols+j]
	}
	return &GqVector{group: m.group, elements: out}, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *GqMatrix) Transpose() *GqMatrix {
	values := make([]*group.GqElement, len(m.values))
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			values[j*m.numRows+i] = m.values[i*m.numCols+j]
		}
	}
	return &GqMatrix{group: m.group, numRows: m.numCols, numCols: m.numRows, values: values}
}

// Equal reports element-wise equality.
func (m *GqMatrix) Equal(other *GqMatrix) bool {
	if other == nil || m.numRows != other.numRows || m.numCols != other.numCols || !m.group.Equal(other.group) {
		return false
	}
	for i := range m.values {
		if !m.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// HashableForm projects the matrix to the row-major list of its rows.
func (m *GqMatrix) HashableForm() hashing.Hashable {
	rows := make(hashing.HashableList, m.numRows)
	for i := 0; i < m.numRows; i++ {
		row := make(hashing.HashableList, m.numCols)
		for j := 0; j < m.numCols; j++ {
			row[j] = m.values[i*m.numCols+j].HashableForm()
		}
		rows[i] = row
	}
	return rows
}
