package valueitem

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	// SchemaRootElement is the root tag of a table data schemata document
	SchemaRootElement = "MFsimTableDataSchemata"
	// SchemaVersion is the only document version written and read
	SchemaVersion = "Version 1.0.0"
)

var (
	ErrUnknownSchemaRoot    = errors.New("unknown table data schemata root element")
	ErrUnknownSchemaVersion = errors.New("unknown table data schemata version")
)

// schemaDocument is the on-disk form of a set of schema value items.
type schemaDocument struct {
	XMLName xml.Name        `xml:"MFsimTableDataSchemata"`
	Version string          `xml:"Version"`
	Items   []schemaItemXML `xml:"ValueItems>ValueItem"`
}

type schemaItemXML struct {
	Name             string   `xml:"Name"`
	DisplayName      string   `xml:"DisplayName"`
	Description      string   `xml:"Description,omitempty"`
	NodeNames        []string `xml:"NodeNames>NodeName"`
	VerticalPosition int      `xml:"VerticalPosition"`
	Format           Format   `xml:"Format"`
	Values           []string `xml:"Values>Value"`
}

// EncodeSchemaDocument renders items as a versioned table data schemata document
func EncodeSchemaDocument(items []*ValueItem) ([]byte, error) {
	doc := schemaDocument{Version: SchemaVersion}
	for _, item := range items {
		doc.Items = append(doc.Items, schemaItemXML{
			Name:             item.Name,
			DisplayName:      item.DisplayName,
			Description:      item.Description,
			NodeNames:        item.NodeNames,
			VerticalPosition: item.VerticalPosition,
			Format:           item.Format,
			Values:           item.Values,
		})
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode table data schemata: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

// DecodeSchemaDocument parses a table data schemata document
func DecodeSchemaDocument(data []byte) ([]*ValueItem, error) {
	var doc schemaDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		var unexpected xml.UnmarshalError
		if errors.As(err, &unexpected) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSchemaRoot, err)
		}
		return nil, fmt.Errorf("failed to parse table data schemata: %w", err)
	}
	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchemaVersion, doc.Version)
	}

	items := make([]*ValueItem, 0, len(doc.Items))
	for _, x := range doc.Items {
		items = append(items, &ValueItem{
			Name:             x.Name,
			DisplayName:      x.DisplayName,
			Description:      x.Description,
			NodeNames:        x.NodeNames,
			VerticalPosition: x.VerticalPosition,
			Format:           x.Format,
			Values:           x.Values,
		})
	}
	return items, nil
}

// EncodeCompressed renders items as a gzip compressed, Base64 encoded document
func EncodeCompressed(items []*ValueItem) (string, error) {
	data, err := EncodeSchemaDocument(items)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	if _, err := gzWriter.Write(data); err != nil {
		return "", fmt.Errorf("failed to compress table data schemata: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to compress table data schemata: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeCompressed reverses EncodeCompressed
func DecodeCompressed(encoded string) ([]*ValueItem, error) {
	if encoded == "" {
		return nil, fmt.Errorf("compressed table data schemata is empty")
	}

	decodedBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Base64: %w", err)
	}

	gzReader, err := gzip.NewReader(bytes.NewReader(decodedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	data, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip: %w", err)
	}

	return DecodeSchemaDocument(data)
}
