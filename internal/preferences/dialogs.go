package preferences

// Dialog names a fixed-size dialog whose size is remembered
type Dialog string

const (
	DialogSlicerShow              Dialog = "SlicerShow"
	DialogSingleSlicerShow        Dialog = "SingleSlicerShow"
	DialogSimulationMovieSlicer   Dialog = "SimulationMovieSlicerShow"
	DialogValueItemEdit           Dialog = "ValueItemEdit"
	DialogTextEdit                Dialog = "TextEdit"
	DialogValueItemShow           Dialog = "ValueItemShow"
	DialogTableDataSchemataManage Dialog = "TableDataSchemataManage"
	DialogValueItemMatrixDiagram  Dialog = "ValueItemMatrixDiagram"
	DialogStructureEdit           Dialog = "StructureEdit"
	DialogPeptideEdit             Dialog = "PeptideEdit"
	DialogCompartmentEdit         Dialog = "CompartmentEdit"
)

// Dialogs lists the dialogs in persistence order
var Dialogs = []Dialog{
	DialogSlicerShow,
	DialogSingleSlicerShow,
	DialogSimulationMovieSlicer,
	DialogValueItemEdit,
	DialogTextEdit,
	DialogValueItemShow,
	DialogTableDataSchemataManage,
	DialogValueItemMatrixDiagram,
	DialogStructureEdit,
	DialogPeptideEdit,
	DialogCompartmentEdit,
}

// DialogSize is a height and width in pixels
type DialogSize struct {
	Height int
	Width  int
}

var (
	minimumDialogSize    = DialogSize{Height: DefaultDialogHeight, Width: DefaultDialogWidth}
	minimumMainFrameSize = DialogSize{Height: DefaultMainFrameHeight, Width: DefaultMainFrameWidth}
)

func (d DialogSize) covers(minimum DialogSize) bool {
	return d.Height >= minimum.Height && d.Width >= minimum.Width
}

func (s *Store) setDialogDefaults() {
	s.dialogSizes = make(map[Dialog]DialogSize, len(Dialogs))
	for _, dialog := range Dialogs {
		s.dialogSizes[dialog] = minimumDialogSize
	}
	s.customDialogSize = minimumDialogSize
	s.mainFrameSize = minimumMainFrameSize
}

// DialogSize returns the remembered size of dialog
func (s *Store) DialogSize(dialog Dialog) DialogSize {
	if size, ok := s.dialogSizes[dialog]; ok {
		return size
	}
	return minimumDialogSize
}

func (s *Store) DefaultDialogSize() DialogSize { return minimumDialogSize }

// SetDialogSize rejects sizes below the dialog minimum and unknown dialogs
func (s *Store) SetDialogSize(dialog Dialog, size DialogSize) Result[DialogSize] {
	current, ok := s.dialogSizes[dialog]
	if !ok || !size.covers(minimumDialogSize) {
		return unchanged(s.DialogSize(dialog))
	}
	s.dialogSizes[dialog] = size
	return Result[DialogSize]{Changed: current != size, Value: size}
}

// MainFrameSize returns the remembered size of the main window
func (s *Store) MainFrameSize() DialogSize { return s.mainFrameSize }

func (s *Store) DefaultMainFrameSize() DialogSize { return minimumMainFrameSize }

// SetMainFrameSize rejects sizes below the main frame minimum or, when
// known, above the maximum screen size.
func (s *Store) SetMainFrameSize(size DialogSize) Result[DialogSize] {
	if !size.covers(minimumMainFrameSize) {
		return unchanged(s.mainFrameSize)
	}
	if maximum := s.runtime.mainFrameMaximumSize; maximum.Height > 0 && maximum.Width > 0 && !maximum.covers(size) {
		return unchanged(s.mainFrameSize)
	}
	return assign(&s.mainFrameSize, size)
}

// Custom dialog size

func (s *Store) CustomDialogSize() DialogSize { return s.customDialogSize }

func (s *Store) DefaultCustomDialogSize() DialogSize { return minimumDialogSize }

// SetCustomDialogHeight clamps the height to at least the dialog minimum
func (s *Store) SetCustomDialogHeight(height int) Result[int] {
	return assignBounded(&s.customDialogSize.Height, height, customDialogHeightBounds)
}

func (s *Store) SetCustomDialogWidth(width int) Result[int] {
	return assignBounded(&s.customDialogSize.Width, width, customDialogWidthBounds)
}
