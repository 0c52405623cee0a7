// Package catalog 加载商品数据集：YAML 先转 JSON 做 schema 校验，再解码成领域对象
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"layerit/domain/product"
	"layerit/domain/skin"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/products.yaml
var defaultDataset []byte

//go:embed data/schema.json
var schemaJSON []byte

const schemaURL = "catalog.schema.json"

// ErrInvalidCatalog 数据集不符合 schema 或包含重复 id
var ErrInvalidCatalog = errors.New("invalid catalog")

type datasetFile struct {
	Products []productRecord `yaml:"products"`
}

type productRecord struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Brand       string   `yaml:"brand"`
	Description string   `yaml:"description"`
	Ingredients []string `yaml:"ingredients"`
	SkinTypes   []string `yaml:"skin_types"`
}

// DefaultDataset returns the embedded dataset bytes.
func DefaultDataset() []byte {
	return append([]byte(nil), defaultDataset...)
}

// Load 读取 path 指定的数据集；path 为空时使用内置数据集
func Load(path string) ([]product.Product, error) {
	if path == "" {
		return Parse(defaultDataset)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	products, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return products, nil
}

// Parse 校验并解码 YAML 数据集，保持文件中的顺序
func Parse(data []byte) ([]product.Product, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[int]struct{}, len(file.Products))
	products := make([]product.Product, 0, len(file.Products))
	for _, rec := range file.Products {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, product.NewDuplicateIDError(rec.ID))
		}
		seen[rec.ID] = struct{}{}

		p, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %w", ErrInvalidCatalog, rec.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r productRecord) toDomain() (product.Product, error) {
	types := make([]skin.Type, 0, len(r.SkinTypes))
	for _, s := range r.SkinTypes {
		t, err := skin.Parse(s)
		if err != nil {
			return product.Product{}, err
		}
		types = append(types, t)
	}
	return product.NewProduct(r.ID, r.Name, r.Brand, r.Description, r.Ingredients, types)
}

func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return formatValidationError(validationErr)
		}
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}
	return schema, nil
}

// formatValidationError 把嵌套的校验错误展开成一行一条
func formatValidationError(err *jsonschema.ValidationError) error {
	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("%w: schema validation failed", ErrInvalidCatalog)
	}
	return fmt.Errorf("%w:\n    - %s", ErrInvalidCatalog, strings.Join(messages, "\n    - "))
}
