package preferences

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"

	"mfsim/internal/common"
	"mfsim/internal/fileutil"
	"mfsim/internal/messages"
)

const (
	rootElement          = "BasicPreferences"
	versionElement       = "Version"
	schemaVersionAttr    = "schemaVersion"
	currentSchemaVersion = "1"
	currentVersion       = "Version 1.0.0"
	malformedSuffix      = ".malformed"
)

// xmlNode is a generic element used to build and walk preference documents
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func leaf(tag, content string) xmlNode {
	return xmlNode{XMLName: xml.Name{Local: tag}, Content: content}
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *xmlNode) children() map[string]*xmlNode {
	result := make(map[string]*xmlNode, len(n.Children))
	for i := range n.Children {
		child := &n.Children[i]
		if _, ok := result[child.XMLName.Local]; !ok {
			result[child.XMLName.Local] = child
		}
	}
	return result
}

// versionReaders maps a document version to the routine that applies it
var versionReaders = map[string]func(s *Store, elements map[string]*xmlNode) error{
	currentVersion: (*Store).readVersion1,
}

// encodePersistenceDocument renders all persisted fields in field table order
func (s *Store) encodePersistenceDocument() ([]byte, error) {
	root := xmlNode{
		XMLName: xml.Name{Local: rootElement},
		Attrs:   []xml.Attr{{Name: xml.Name{Local: schemaVersionAttr}, Value: currentSchemaVersion}},
	}
	root.Children = append(root.Children, leaf(versionElement, currentVersion))
	for _, field := range persistedFields {
		node, err := field.write(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", field.tag, err)
		}
		root.Children = append(root.Children, node)
	}

	data, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// WritePersistenceXmlInformation replaces the preferences file with the
// current values. Failures are logged, shown to the user and returned.
func (s *Store) WritePersistenceXmlInformation() error {
	if err := s.writePersistenceFile(); err != nil {
		s.logger.Error().Err(err).Str("file", s.preferencesFile).Msg("Failed to write preferences")
		s.notifier.ShowError(messages.Get("TitlePreferences"), err.Error())
		return err
	}
	s.logger.Info().Str("file", s.preferencesFile).Msg("Preferences written")
	return nil
}

func (s *Store) writePersistenceFile() error {
	if err := os.Remove(s.preferencesFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return NewPersistenceError("write", s.preferencesFile, fmt.Errorf("%w: %v", ErrFileDeletion, err))
	}

	data, err := s.encodePersistenceDocument()
	if err != nil {
		return NewPersistenceError("write", s.preferencesFile, err)
	}
	if err := os.WriteFile(s.preferencesFile, data, common.DefaultFilePermissions); err != nil {
		return NewPersistenceError("write", s.preferencesFile, err)
	}
	s.lastDocument = data

	if s.snapshots != nil {
		if err := s.snapshots.Save(data); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to record preferences snapshot")
		}
	}
	return nil
}

// ReadPersistenceXmlInformation applies the preferences file on top of the
// current values. A missing file is not an error. A malformed file is
// kept next to the original and replaced by the latest snapshot when one
// exists.
func (s *Store) ReadPersistenceXmlInformation() error {
	data, err := os.ReadFile(s.preferencesFile)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug().Str("file", s.preferencesFile).Msg("No preferences file, keeping defaults")
		return nil
	}
	if err != nil {
		return NewPersistenceError("read", s.preferencesFile, err)
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		recovered, recoverErr := s.recoverFromSnapshot()
		if recoverErr != nil {
			return NewPersistenceError("read", s.preferencesFile, errors.Join(err, recoverErr))
		}
		s.logger.Warn().Err(err).Msg("Malformed preferences file, using latest snapshot")
		if copyErr := fileutil.CopyFile(s.preferencesFile, s.preferencesFile+malformedSuffix); copyErr != nil {
			s.logger.Warn().Err(copyErr).Msg("Failed to keep malformed preferences file")
		}
		root = recovered
	}

	if err := s.applyDocument(&root); err != nil {
		return NewPersistenceError("read", s.preferencesFile, err)
	}

	if current, err := s.encodePersistenceDocument(); err == nil {
		s.lastDocument = current
	}
	return nil
}

func (s *Store) recoverFromSnapshot() (xmlNode, error) {
	var root xmlNode
	if s.snapshots == nil {
		return root, errors.New("no snapshot repository")
	}
	data, err := s.snapshots.Latest()
	if err != nil {
		return root, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if len(data) == 0 {
		return root, errors.New("no snapshot available")
	}
	if err := xml.Unmarshal(data, &root); err != nil {
		return root, fmt.Errorf("malformed snapshot: %w", err)
	}
	return root, nil
}

func (s *Store) applyDocument(root *xmlNode) error {
	if root.XMLName.Local != rootElement {
		return fmt.Errorf("%w: %q", ErrUnknownRootElement, root.XMLName.Local)
	}
	if schemaVersion, ok := root.attr(schemaVersionAttr); ok && schemaVersion != currentSchemaVersion {
		return fmt.Errorf("%w: schema version %q", ErrUnsupportedVersion, schemaVersion)
	}

	elements := root.children()
	version, ok := elements[versionElement]
	if !ok {
		return ErrMissingVersion
	}
	read, ok := versionReaders[version.Content]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version.Content)
	}
	return read(s, elements)
}

// readVersion1 assigns every present element in field table order. The
// first element that does not parse stops the read.
func (s *Store) readVersion1(elements map[string]*xmlNode) error {
	for _, field := range persistedFields {
		node, ok := elements[field.tag]
		if !ok {
			continue
		}
		if err := field.read(s, node); err != nil {
			return fmt.Errorf("element %s: %w", field.tag, err)
		}
	}

	if s.internalMFsimJobPath != "" {
		if err := s.createDirectories(); err != nil {
			s.logger.Warn().Err(err).Str("path", s.internalMFsimJobPath).Msg("Internal job path not usable, using data directory")
			s.internalMFsimJobPath = ""
			return s.createDirectories()
		}
	}
	return nil
}

// IsModified reports whether the current values differ from the last
// document written or read.
func (s *Store) IsModified() bool {
	if s.lastDocument == nil {
		return true
	}
	current, err := s.encodePersistenceDocument()
	if err != nil {
		return true
	}
	return !bytes.Equal(current, s.lastDocument)
}

func formatNumber[T number](v T) string {
	switch value := any(v).(type) {
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
