package tool

import "encoding/json"

// Result is the envelope every dispatch serializes back to the caller. On
// success the generator's payload fields (output_path, filename, ...) are
// flattened next to status; on error only status, code and message appear.
// A success Result always references a file that exists on disk at the time
// the Result is returned.
type Result struct {
	Status  string         // "success" or "error"
	Code    string         // error code, empty on success
	Message string         // human readable error message, empty on success
	Fields  map[string]any // generator payload, nil on error
}

// Success wraps a generator payload into a success Result.
func Success(fields map[string]any) Result {
	return Result{Status: "success", Fields: fields}
}

// Error builds an error Result with the given code and message.
func Error(code, message string) Result {
	return Result{Status: "error", Code: code, Message: message}
}

// IsError reports whether the result carries an error status.
func (r Result) IsError() bool { return r.Status == "error" }

// OutputPath returns the generated artifact path, or "" for error results.
func (r Result) OutputPath() string {
	p, _ := r.Fields["output_path"].(string)
	return p
}

// MarshalJSON flattens the payload fields next to the status keys, matching
// the shape consumed by the model on the way back.
func (r Result) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		m[k] = v
	}
	m["status"] = r.Status
	if r.Code != "" {
		m["code"] = r.Code
	}
	if r.Message != "" {
		m["message"] = r.Message
	}
	return json.Marshal(m)
}

// UnmarshalJSON restores a Result from its flattened wire shape.
func (r *Result) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	r.Status, _ = m["status"].(string)
	r.Code, _ = m["code"].(string)
	r.Message, _ = m["message"].(string)
	delete(m, "status")
	delete(m, "code")
	delete(m, "message")
	if len(m) > 0 {
		r.Fields = m
	}
	return nil
}

// JSON serializes the result, falling back to a minimal error envelope if
// marshaling itself fails.
func (r Result) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return `{"status":"error","message":"failed to serialize tool result"}`
	}
	return string(b)
}
