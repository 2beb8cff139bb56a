package command

// CustomEvaluator is called by CustomCommands for each Custom record in
// range. glyphsSeen is the glyph position of the record. Returning false
// asks the search to stop after the Custom records stacked at the same
// position.
type CustomEvaluator func(state any, glyphsSeen int, cmd Custom) bool

// glyphAdvance returns how far record rec moves the glyph position.
func glyphAdvance(rec []byte) int {
	switch Type(rec[0]) {
	case TypeText:
		return int(bo.Uint32(rec[1+27:]))
	case TypeIcon:
		return 1
	case TypeLineBreak:
		return int(bo.Uint16(rec[1:]))
	}
	return 0
}

// CustomCommands scans the stream from the start and calls eval for the
// Custom records that lie after startGlyph and no further than
// startGlyph+glyphCount. Text records advance the glyph position by their
// source length, Icon records by one and LineBreak records by their source
// length.
//
// A Custom record at position p is evaluated when p > startGlyph, or for
// every p when startGlyph is 0. A record exactly at startGlyph+glyphCount
// is included. Once eval returns false, the remaining Custom records that
// directly follow are still evaluated and the scan ends at the next other
// record.
//
// CustomCommands returns the number of eval calls.
func (s *Stream) CustomCommands(startGlyph, glyphCount int, state any, eval CustomEvaluator) int {
	if eval == nil {
		return 0
	}
	defer s.borrow()()

	end := startGlyph + glyphCount
	seen, calls := 0, 0
	stopping := false
	for i := range s.offsets {
		rec := s.record(i)
		t := Type(rec[0])
		if t != TypeCustom {
			if stopping {
				break
			}
			seen += glyphAdvance(rec)
			if seen > end {
				break
			}
			continue
		}
		if seen > startGlyph || startGlyph == 0 {
			calls++
			if !eval(state, seen, decodeCustom(rec[1:])) {
				stopping = true
			}
		}
	}
	return calls
}

// LinkAt returns the registry index of the innermost link that covers
// glyph position glyph, counted the way CustomCommands counts.
func (s *Stream) LinkAt(glyph int) (uint16, bool) {
	if glyph < 0 {
		return 0, false
	}
	defer s.borrow()()

	var links []uint16
	seen := 0
	for i := range s.offsets {
		rec := s.record(i)
		switch Type(rec[0]) {
		case TypePushLink:
			links = append(links, bo.Uint16(rec[1:]))
		case TypePopLink:
			if len(links) > 0 {
				links = links[:len(links)-1]
			}
		case TypeText, TypeIcon:
			n := glyphAdvance(rec)
			if glyph >= seen && glyph < seen+n && len(links) > 0 {
				return links[len(links)-1], true
			}
			seen += n
		case TypeLineBreak:
			seen += glyphAdvance(rec)
		}
		if seen > glyph {
			break
		}
	}
	return 0, false
}
