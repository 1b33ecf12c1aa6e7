package relations

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Context snapshots store references as compact URIs instead of embedding
// object graphs: "api:<model>#<id>" for domain objects and
// "value:<type>#<value>" for scalars. The worker re-derives live values from
// these at render time.

// ModelURI builds an API model reference URI, e.g. "api:person#12".
func ModelURI(model string, id int) string {
	return fmt.Sprintf("api:%s#%d", model, id)
}

// ScalarURI builds a scalar value URI, e.g. "value:date#2026-05-01".
func ScalarURI(type_, value string) string {
	return fmt.Sprintf("value:%s#%s", type_, value)
}

// NoneURI is the URI of an absent value.
func NoneURI() string {
	return "value:none#"
}

// ParseModelURI splits an "api:<model>#<id>" URI into its parts.
func ParseModelURI(uri string) (model string, id int, err error) {
	rest, ok := strings.CutPrefix(uri, "api:")
	if !ok {
		return "", 0, fmt.Errorf("unsupported URI %q", uri)
	}

	model, idStr, ok := strings.Cut(rest, "#")
	if !ok || model == "" {
		return "", 0, fmt.Errorf("unsupported URI %q", uri)
	}

	id, err = strconv.Atoi(idStr)
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse id in URI %q: %w", uri, err)
	}

	return model, id, nil
}

// ParseScalarURI decodes a "value:<type>#<value>" URI into a Go value.
func ParseScalarURI(uri string) (any, error) {
	rest, ok := strings.CutPrefix(uri, "value:")
	if !ok {
		return nil, fmt.Errorf("unsupported URI %q", uri)
	}

	type_, value, ok := strings.Cut(rest, "#")
	if !ok {
		return nil, fmt.Errorf("unsupported URI %q", uri)
	}

	switch type_ {
	case "str":
		return value, nil
	case "int":
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", value, err)
		}
		return parsed, nil
	case "float":
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", value, err)
		}
		return parsed, nil
	case "bool":
		return strings.EqualFold(value, "true"), nil
	case "date":
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", value, err)
		}
		return parsed, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported scalar type %q", type_)
	}
}
