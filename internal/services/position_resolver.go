package services

import (
	"strconv"
	"strings"

	"todo/internal/domain"
	"todo/internal/errors"
)

// PositionIndex maps 1-based display positions onto stable task ids.
// It reflects one listing and must be rebuilt after any change.
type PositionIndex struct {
	ids []int64
}

// NewPositionIndex builds an index from tasks in display order
func NewPositionIndex(tasks []*domain.Task) *PositionIndex {
	ids := make([]int64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return &PositionIndex{ids: ids}
}

// Len returns the number of positions in the index
func (p *PositionIndex) Len() int {
	return len(p.ids)
}

// ParsePosition parses a display position as typed on the command line
func ParsePosition(raw string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || position < 1 {
		return 0, errors.NewInvalidPositionError(raw)
	}
	return position, nil
}

// Resolve returns the stable id at the display position raw
func (p *PositionIndex) Resolve(raw string) (int64, error) {
	position, err := ParsePosition(raw)
	if err != nil {
		return 0, err
	}
	return p.ResolvePosition(position)
}

// ResolvePosition returns the stable id at an already parsed position
func (p *PositionIndex) ResolvePosition(position int) (int64, error) {
	if position < 1 || position > p.Len() {
		return 0, errors.NewPositionNotFoundError(position, p.Len())
	}
	return p.ids[position-1], nil
}
