package memory

import (
	"fmt"
	"os"
	"strings"
	"vestiaKiosk/domain"

	"gopkg.in/yaml.v3"
)

type profilesFile struct {
	Profiles []domain.CustomerProfile `yaml:"profiles"`
}

// LoadCatalogFile reads a YAML catalog seed. Items default to in stock and
// categories and colors are normalized.
func LoadCatalogFile(path string) ([]domain.CatalogItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) ([]domain.CatalogItem, error) {
	var doc struct {
		Items []yaml.Node `yaml:"items"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	items := make([]domain.CatalogItem, 0, len(doc.Items))
	seen := make(map[string]struct{}, len(doc.Items))
	for i := range doc.Items {
		item := domain.CatalogItem{InStock: true}
		if err := doc.Items[i].Decode(&item); err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
		item.SKU = strings.TrimSpace(item.SKU)
		if item.SKU == "" {
			return nil, fmt.Errorf("catalog item %d: sku is required", i)
		}
		if _, dup := seen[item.SKU]; dup {
			return nil, fmt.Errorf("catalog item %d: duplicate sku %s", i, item.SKU)
		}
		seen[item.SKU] = struct{}{}

		item.Category = strings.ToLower(strings.TrimSpace(item.Category))
		if !domain.IsCategory(item.Category) {
			return nil, fmt.Errorf("catalog item %s: unknown category %q", item.SKU, item.Category)
		}
		item.ColorFamily = domain.NormalizeColor(item.ColorFamily)
		items = append(items, item)
	}
	return items, nil
}

// LoadProfilesFile reads registered customer profiles from YAML.
func LoadProfilesFile(path string) ([]domain.CustomerProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var doc profilesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}
	for i, p := range doc.Profiles {
		if strings.TrimSpace(p.CustomerID) == "" {
			return nil, fmt.Errorf("profile %d: customerId is required", i)
		}
	}
	return doc.Profiles, nil
}
