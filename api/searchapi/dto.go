// Package searchapi exposes grid searches over HTTP.
package searchapi

import (
	"github.com/google/uuid"
)

// SearchRequest describes a grid and the flow to run on it.
// Coordinates are [row, col]. One end runs a single search; two ends run
// the chained start→end1→end2 flow.
type SearchRequest struct {
	Rows     int     `json:"rows" binding:"omitempty,min=2,max=256"`
	Mode     string  `json:"mode" binding:"required,oneof=astar dijkstra"`
	Start    []int   `json:"start" binding:"required,len=2"`
	Ends     [][]int `json:"ends" binding:"required,min=1,max=2,dive,len=2"`
	Barriers [][]int `json:"barriers" binding:"omitempty,dive,len=2"`
	Frames   bool    `json:"frames"`
}

// LegResponse reports one search of the run.
type LegResponse struct {
	From     [2]int   `json:"from"`
	To       [2]int   `json:"to"`
	Outcome  string   `json:"outcome"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path,omitempty"`
}

// SearchResponse is the result of a run.
type SearchResponse struct {
	ID            uuid.UUID     `json:"id"`
	Mode          string        `json:"mode"`
	Success       bool          `json:"success"`
	Cost          int           `json:"cost"`
	Legs          []LegResponse `json:"legs"`
	Frames        [][]string    `json:"frames,omitempty"`
	DroppedFrames int           `json:"dropped_frames,omitempty"`
	Final         []string      `json:"final"`
}
