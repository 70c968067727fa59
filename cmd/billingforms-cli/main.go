package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-billingforms/pkg/banner"
	"github.com/goliatone/go-billingforms/pkg/formrules"
	"github.com/goliatone/go-billingforms/pkg/formvalidation"
	"github.com/goliatone/go-billingforms/pkg/prompt"
)

func main() {
	kindFlag := flag.String("kind", "", "form kind (service, unite, type-tarif, tarif, tarif-special); prompted when empty")
	dataPath := flag.String("data", "", "JSON file with the submitted values; prompted interactively when empty")
	catalogPath := flag.String("catalog", "", "YAML/JSON catalog overriding the embedded one")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive the catalog from")
	openapiMap := flag.String("openapi-map", "", "kind=Schema pairs for -openapi, comma separated")
	printBanner := flag.Bool("banner", false, "print an HTML notification banner instead of JSON")
	flag.Parse()

	ctx := context.Background()

	svc, err := buildService(ctx, *catalogPath, *openapiPath, *openapiMap)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	driver := prompt.NewSurveyDriver()

	kind, err := resolveKind(ctx, driver, *kindFlag)
	if err != nil {
		log.Fatalf("Invalid form kind: %v", err)
	}

	data, err := loadData(ctx, driver, svc, kind, *dataPath)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("Failed to read form data: %v", err)
	}

	report := formrules.Check(svc, kind, data)

	if *printBanner {
		out, err := banner.Render(report)
		if err != nil {
			log.Fatalf("Failed to render banner: %v", err)
		}
		fmt.Println(out)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}

	if !report.Valid {
		os.Exit(1)
	}
}

func buildService(ctx context.Context, catalogPath, openapiPath, openapiMap string) (*formvalidation.Service, error) {
	switch {
	case strings.TrimSpace(openapiPath) != "":
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		mapping, err := parseMapping(openapiMap)
		if err != nil {
			return nil, err
		}
		catalog, err := formvalidation.CatalogFromOpenAPI(ctx, raw, mapping)
		if err != nil {
			return nil, err
		}
		return formvalidation.New(formvalidation.WithCatalog(catalog)), nil
	case strings.TrimSpace(catalogPath) != "":
		raw, err := os.ReadFile(catalogPath)
		if err != nil {
			return nil, err
		}
		catalog, err := formvalidation.LoadCatalog(raw)
		if err != nil {
			return nil, err
		}
		return formvalidation.New(formvalidation.WithCatalog(catalog)), nil
	default:
		return formvalidation.New(), nil
	}
}

func parseMapping(raw string) (map[formvalidation.FormKind]string, error) {
	mapping := make(map[formvalidation.FormKind]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, schema, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(schema) == "" {
			return nil, fmt.Errorf("invalid mapping %q, expected kind=Schema", pair)
		}
		kind, err := formvalidation.ParseFormKind(name)
		if err != nil {
			return nil, err
		}
		mapping[kind] = strings.TrimSpace(schema)
	}
	if len(mapping) == 0 {
		return nil, errors.New("-openapi requires -openapi-map")
	}
	return mapping, nil
}

func resolveKind(ctx context.Context, driver prompt.Driver, raw string) (formvalidation.FormKind, error) {
	if strings.TrimSpace(raw) == "" {
		return prompt.SelectKind(ctx, driver)
	}
	return formvalidation.ParseFormKind(raw)
}

func loadData(ctx context.Context, driver prompt.Driver, svc *formvalidation.Service, kind formvalidation.FormKind, path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return prompt.Collect(ctx, driver, svc, kind)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return data, nil
}
