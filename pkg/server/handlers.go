// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semver/pkg/errors"
	"github.com/NVIDIA/semver/pkg/semver"
	"github.com/NVIDIA/semver/pkg/serializer"
)

// handleParse handles GET /v1/parse?v=VERSION
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed,
			errors.New(errors.ErrCodeMethodNotAllowed, "Method not allowed"), false)
		return
	}

	input := r.URL.Query().Get("v")
	v, err := semver.Parse(input)
	if err != nil {
		slog.Debug("parse rejected", "input", input, "error", err)
		WriteError(w, r, http.StatusBadRequest,
			errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid version string", err,
				map[string]any{
					"input": input,
				}), false)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{
		Input:     input,
		Version:   v,
		Canonical: v.String(),
	})
}

// handleCompare handles GET /v1/compare?a=A&b=B
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, r, http.StatusMethodNotAllowed,
			errors.New(errors.ErrCodeMethodNotAllowed, "Method not allowed"), false)
		return
	}

	q := r.URL.Query()
	a, err := semver.Parse(q.Get("a"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest,
			errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid version string", err,
				map[string]any{
					"param": "a",
					"input": q.Get("a"),
				}), false)
		return
	}

	b, err := semver.Parse(q.Get("b"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest,
			errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid version string", err,
				map[string]any{
					"param": "b",
					"input": q.Get("b"),
				}), false)
		return
	}

	precedence := a.Compare(b)
	serializer.RespondJSON(w, http.StatusOK, CompareResponse{
		A:          a,
		B:          b,
		Precedence: precedence,
		Relation:   relationSymbol(precedence),
		Equal:      a.Equals(b),
	})
}

func relationSymbol(precedence int) string {
	switch {
	case precedence < 0:
		return "<"
	case precedence > 0:
		return ">"
	default:
		return "="
	}
}
