// SPDX-License-Identifier: MIT
package api

import (
	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/pipeline"
	"github.com/katalvlaran/fourcolor/planarity"
)

type coloringRequest struct {
	Matrix        [][]int  `json:"matrix" validate:"required,dive,required,dive,oneof=0 1"`
	Palette       []string `json:"palette" validate:"omitempty,unique,dive,required"`
	Strategy      string   `json:"strategy" validate:"omitempty,oneof=recursive iterative"`
	PlanarityGate *bool    `json:"planarity_gate"`
	CrossCheck    bool     `json:"cross_check"`
}

type planarityRequest struct {
	Matrix [][]int `json:"matrix" validate:"required,dive,required,dive,oneof=0 1"`
}

type statsDTO struct {
	Nodes       int64 `json:"nodes"`
	Assignments int64 `json:"assignments"`
	Backtracks  int64 `json:"backtracks"`
	MaxDepth    int   `json:"max_depth"`
}

type planarityDTO struct {
	Verdict   string `json:"verdict"`
	Reason    string `json:"reason"`
	Component []int  `json:"component,omitempty"`
	Vertices  int    `json:"vertices"`
	Edges     int    `json:"edges"`
	Bound     int    `json:"bound,omitempty"`
}

type coloringResponse struct {
	RunID        string        `json:"run_id"`
	Feasible     bool          `json:"feasible"`
	Gated        bool          `json:"gated"`
	Colors       []string      `json:"colors"`
	Planarity    *planarityDTO `json:"planarity,omitempty"`
	CrossChecked bool          `json:"cross_checked"`
	Stats        statsDTO      `json:"stats"`
	ElapsedMS    float64       `json:"elapsed_ms"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func toPlanarityDTO(r planarity.Report) *planarityDTO {
	return &planarityDTO{
		Verdict:   r.Verdict.String(),
		Reason:    r.Reason.String(),
		Component: r.Component,
		Vertices:  r.Vertices,
		Edges:     r.Edges,
		Bound:     r.Bound,
	}
}

func toColoringResponse(rep pipeline.Report) coloringResponse {
	out := coloringResponse{
		RunID:        rep.RunID,
		Feasible:     rep.Feasible,
		Gated:        rep.Gated,
		CrossChecked: rep.CrossChecked,
		Stats: statsDTO{
			Nodes:       rep.Stats.Nodes,
			Assignments: rep.Stats.Assignments,
			Backtracks:  rep.Stats.Backtracks,
			MaxDepth:    rep.Stats.MaxDepth,
		},
		ElapsedMS: float64(rep.Elapsed.Microseconds()) / 1000,
	}
	if rep.Colors != nil {
		out.Colors = colorStrings(rep.Colors)
	}
	if rep.Planarity != nil {
		out.Planarity = toPlanarityDTO(*rep.Planarity)
	}

	return out
}

func colorStrings(cs []coloring.Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}

	return out
}
