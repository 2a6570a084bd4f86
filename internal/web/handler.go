package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/e-XpertSolutions/go-linalg/linalg"
)

var errUnknownOperation = errors.New("unknown operation")

// computeRequest is the body of POST /api/compute. Matrix and vector fields
// accept either a delimited string ("1 2; 3 4") or a nested JSON array.
type computeRequest struct {
	Operation string          `json:"operation"`
	MatrixA   json.RawMessage `json:"matrix_a"`
	MatrixB   json.RawMessage `json:"matrix_b"`
	VectorB   json.RawMessage `json:"vector_b"`
}

type computeResponse struct {
	Success     bool   `json:"success"`
	Operation   string `json:"operation"`
	Result      any    `json:"result"`
	Description string `json:"description"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	resp, err := compute(req)
	if err != nil {
		var opErr *linalg.OpError
		switch {
		case errors.As(err, &opErr), errors.Is(err, errUnknownOperation):
			s.log.Info("compute rejected", "operation", req.Operation, "reason", err.Error())
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			s.log.Error("compute failed", "operation", req.Operation, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "unexpected error: " + err.Error()})
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// compute decodes the operands and dispatches to the core. Matrix A is
// decoded before the operation name is checked, matching the behavior that
// malformed input is reported even for unknown operations.
func compute(req computeRequest) (*computeResponse, error) {
	op := strings.ToLower(strings.TrimSpace(req.Operation))

	a, err := decodeMatrix(req.MatrixA, "matrix_a")
	if err != nil {
		return nil, err
	}
	ar, ac := a.Dims()
	aShape := fmt.Sprintf("%d×%d", ar, ac)

	resp := &computeResponse{Success: true, Operation: op}
	switch op {
	case "multiply":
		b, err := decodeMatrix(req.MatrixB, "matrix_b")
		if err != nil {
			return nil, err
		}
		br, bc := b.Dims()
		product, err := linalg.Multiply(a, b)
		if err != nil {
			return nil, err
		}
		resp.Result = product.Rows()
		resp.Description = fmt.Sprintf("Product of %s and %d×%d matrices", aShape, br, bc)

	case "determinant":
		d, err := linalg.Det(a)
		if err != nil {
			return nil, err
		}
		resp.Result = round10(d)
		resp.Description = fmt.Sprintf("Determinant of %s matrix", aShape)

	case "inverse":
		inv, err := linalg.Inverse(a)
		if err != nil {
			return nil, err
		}
		resp.Result = inv.Rows()
		resp.Description = fmt.Sprintf("Inverse of %s matrix", aShape)

	case "transpose":
		resp.Result = linalg.Transpose(a).Rows()
		resp.Description = fmt.Sprintf("Transpose: %s → %d×%d", aShape, ac, ar)

	case "eigen":
		eig, err := linalg.Eig(a)
		if err != nil {
			return nil, err
		}
		resp.Result = map[string]any{
			"eigenvalues":  renderComplexSlice(eig.Values),
			"eigenvectors": renderComplexRows(eig.Vectors),
		}
		resp.Description = fmt.Sprintf("Eigenvalues and eigenvectors of %s matrix", aShape)

	case "solve":
		b, err := decodeVector(req.VectorB, "vector_b")
		if err != nil {
			return nil, err
		}
		x, err := linalg.Solve(a, b)
		if err != nil {
			return nil, err
		}
		resp.Result = x.Slice()
		resp.Description = fmt.Sprintf("Solution to Ax = b where A is %s", aShape)

	case "lu":
		lu, err := linalg.LU(a)
		if err != nil {
			return nil, err
		}
		resp.Result = map[string]any{
			"P": lu.P.Rows(),
			"L": lu.L.Rows(),
			"U": lu.U.Rows(),
		}
		resp.Description = fmt.Sprintf("LU decomposition of %s matrix", aShape)

	case "rank":
		rank, err := linalg.Rank(a)
		if err != nil {
			return nil, err
		}
		resp.Result = rank
		resp.Description = fmt.Sprintf("Rank of %s matrix", aShape)

	case "trace":
		tr, err := linalg.Trace(a)
		if err != nil {
			return nil, err
		}
		resp.Result = round10(tr)
		resp.Description = fmt.Sprintf("Trace of %s matrix", aShape)

	default:
		return nil, fmt.Errorf("%w: '%s'", errUnknownOperation, op)
	}
	return resp, nil
}

// decodeMatrix accepts either a JSON string (parsed as delimited text) or a
// nested JSON array (coerced directly).
func decodeMatrix(raw json.RawMessage, label string) (*linalg.Matrix, error) {
	if isEmptyJSON(raw) {
		return nil, linalg.Errorf("", linalg.ErrInvalidInput, "matrix input is empty")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		rows, err := ParseMatrix(s)
		if err != nil {
			return nil, err
		}
		return linalg.CoerceMatrix(rows, label)
	}
	v, err := decodeAny(raw)
	if err != nil {
		return nil, linalg.Errorf(label, linalg.ErrInvalidInput, "cannot parse matrix payload")
	}
	return linalg.CoerceMatrix(v, label)
}

func decodeVector(raw json.RawMessage, label string) (*linalg.Vector, error) {
	if isEmptyJSON(raw) {
		return nil, linalg.Errorf("", linalg.ErrInvalidInput, "vector input is empty")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		values, err := ParseVector(s)
		if err != nil {
			return nil, err
		}
		return linalg.CoerceVector(values, label)
	}
	v, err := decodeAny(raw)
	if err != nil {
		return nil, linalg.Errorf(label, linalg.ErrInvalidInput, "cannot parse vector payload")
	}
	return linalg.CoerceVector(v, label)
}

// decodeAny decodes raw JSON preserving number precision via json.Number.
func decodeAny(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
