package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/profilkantor/profile-api/internal/domain"
	"github.com/profilkantor/profile-api/internal/storage"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files
const multipartMemory = 8 << 20

// formDateLayouts are tried in order for date fields
var formDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// formRequest is a parsed form body: text values and uploaded files by field
type formRequest struct {
	values map[string][]string
	files  map[string][]*multipart.FileHeader
}

// uploads returns the files of field as photo store uploads
func (f *formRequest) uploads(field string) []storage.Upload {
	headers := f.files[field]
	ups := make([]storage.Upload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		ups = append(ups, storage.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return ups
}

// parseForm reads a multipart or urlencoded body of at most maxBytes.
// File fields other than fileFields are rejected.
func (rs *Responder) parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64, fileFields ...string) (*formRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	form := &formRequest{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				rs.FailWithError(w, http.StatusBadRequest, "Request body is too large", err)
				return nil, false
			}
			rs.FailWithError(w, http.StatusBadRequest, "Invalid multipart form", err)
			return nil, false
		}
		form.files = r.MultipartForm.File
	} else if err := r.ParseForm(); err != nil {
		rs.FailWithError(w, http.StatusBadRequest, "Invalid form body", err)
		return nil, false
	}
	form.values = r.PostForm

	allowed := make(map[string]bool, len(fileFields))
	for _, f := range fileFields {
		allowed[f] = true
	}
	unknown := make(map[string]string)
	for field := range form.files {
		if !allowed[field] {
			unknown[field] = domain.GetValidationMessage("unknown")
		}
	}
	if len(unknown) > 0 {
		rs.ValidationFailed(w, unknown)
		return nil, false
	}

	return form, true
}

// decodeForm fills dst from form values by their form tags and validates
// it. It writes the 400 response itself and reports success.
func (rs *Responder) decodeForm(w http.ResponseWriter, form *formRequest, dst interface{}) bool {
	if fields := decodeFormValues(form.values, dst); len(fields) > 0 {
		rs.ValidationFailed(w, fields)
		return false
	}
	return rs.validateRequest(w, dst)
}

// decodeFormValues decodes one key at a time so that each failure is
// reported against its field. Blank values count as absent. Keys may carry
// a trailing "[]".
func decodeFormValues(values map[string][]string, dst interface{}) map[string]string {
	fields := make(map[string]string)
	for key, vals := range values {
		name := strings.TrimSuffix(key, "[]")
		input := formInput(vals)
		if input == nil {
			if !isFormField(dst, name) {
				fields[name] = domain.GetValidationMessage("unknown")
			}
			continue
		}

		md := &mapstructure.Metadata{}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "form",
			WeaklyTypedInput: true,
			Metadata:         md,
			Result:           dst,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToSliceHook,
				stringToTimeHook,
				stringToUUIDHook,
			),
		})
		if err != nil {
			fields[name] = err.Error()
			continue
		}

		if err := dec.Decode(map[string]interface{}{name: input}); err != nil {
			fields[name] = domain.GetValidationMessage("format")
			continue
		}
		if len(md.Unused) > 0 {
			fields[name] = domain.GetValidationMessage("unknown")
		}
	}
	return fields
}

// formInput drops blank values; one value decodes as a string, several as a list
func formInput(vals []string) interface{} {
	kept := make([]string, 0, len(vals))
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return kept
	}
}

// isFormField reports whether dst's struct type has a field tagged form:"name"
func isFormField(dst interface{}, name string) bool {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("form") == name {
			return true
		}
	}
	return false
}

// stringToSliceHook accepts a JSON array or a comma separated list for slice fields
func stringToSliceHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if strings.HasPrefix(s, "[") {
		var items []string
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return nil, fmt.Errorf("invalid list: %w", err)
		}
		return items, nil
	}

	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}

func stringToTimeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	for _, layout := range formDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}

func stringToUUIDHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != uuidType {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	id, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		return nil, fmt.Errorf("invalid uuid %q", s)
	}
	return id, nil
}
