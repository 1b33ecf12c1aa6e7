package relations

import (
	"context"
	"fmt"
	"strings"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/models"
)

// ResolveURI turns a single snapshot URI back into a render-context value.
// Domain objects come back as flat maps so templates can reach their fields.
func ResolveURI(ctx context.Context, client *ent.Client, uri string) (any, error) {
	if strings.HasPrefix(uri, "value:") {
		return ParseScalarURI(uri)
	}

	model, id, err := ParseModelURI(uri)
	if err != nil {
		return nil, err
	}

	obj, err := Resolve(ctx, client, Ref{Kind: Kind(model), ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", uri, err)
	}

	return project(obj), nil
}

// BuildContext resolves a persisted context_json snapshot into the map handed
// to the template engine. Values are single URIs or lists of URIs.
func BuildContext(ctx context.Context, client *ent.Client, contextJSON map[string]any) (map[string]any, error) {
	result := make(map[string]any, len(contextJSON))

	for key, raw := range contextJSON {
		switch value := raw.(type) {
		case string:
			resolved, err := ResolveURI(ctx, client, value)
			if err != nil {
				return nil, err
			}
			result[key] = resolved
		case []any:
			items := make([]any, 0, len(value))
			for _, item := range value {
				uri, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("unsupported context entry %v for key %q", item, key)
				}
				resolved, err := ResolveURI(ctx, client, uri)
				if err != nil {
					return nil, err
				}
				items = append(items, resolved)
			}
			result[key] = items
		default:
			return nil, fmt.Errorf("unsupported context entry %v for key %q", raw, key)
		}
	}

	return result, nil
}

// ResolveToHeader re-derives recipient addresses from persisted header
// references. References whose property resolves to an empty value are
// skipped.
func ResolveToHeader(ctx context.Context, client *ent.Client, refs []models.ToHeaderRef) ([]string, error) {
	addresses := make([]string, 0, len(refs))

	for _, ref := range refs {
		resolved, err := ResolveURI(ctx, client, ref.APIURI)
		if err != nil {
			return nil, err
		}

		fields, ok := resolved.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("reference %q does not resolve to an object", ref.APIURI)
		}

		if address, ok := fields[ref.Property].(string); ok && address != "" {
			addresses = append(addresses, address)
		}
	}

	return addresses, nil
}

// project flattens a resolved domain object into template-friendly fields.
func project(obj any) map[string]any {
	switch v := obj.(type) {
	case *ent.Event:
		fields := map[string]any{
			"slug": v.Slug,
			"url":  v.URL,
			"tags": v.Tags,
		}
		if v.StartDate != nil {
			fields["start_date"] = v.StartDate.Format("2006-01-02")
		}
		if v.EndDate != nil {
			fields["end_date"] = v.EndDate.Format("2006-01-02")
		}
		return fields
	case *ent.Person:
		name := v.Personal
		if v.Family != "" {
			name = v.Personal + " " + v.Family
		}
		return map[string]any{
			"personal": v.Personal,
			"family":   v.Family,
			"name":     name,
			"email":    v.Email,
		}
	case *ent.Membership:
		return map[string]any{
			"name":            v.Name,
			"variant":         string(v.Variant),
			"agreement_start": v.AgreementStart.Format("2006-01-02"),
			"agreement_end":   v.AgreementEnd.Format("2006-01-02"),
		}
	case *ent.Award:
		return map[string]any{
			"badge":   v.Badge,
			"awarded": v.Awarded.Format("2006-01-02"),
		}
	case *ent.Task:
		return map[string]any{
			"role": string(v.Role),
		}
	default:
		return map[string]any{}
	}
}
