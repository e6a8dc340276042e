package schemaxml

import "context"

// advance pulls and processes exactly one event, reporting whether the
// chunk source is now exhausted. It is the single choke point every pump
// site drives through.
func (doc *DocumentElement) advance() (exhausted bool, err error) {
	if doc.events == nil {
		// A bare, unparsed document (NewBareDocument) has no event source:
		// every pump immediately sees the input as already exhausted.
		return true, nil
	}
	if doc.ctx != nil {
		if err := doc.ctx.Err(); err != nil {
			return false, context.Cause(doc.ctx)
		}
	}
	ev, err := doc.events.next()
	if err != nil {
		return false, err
	}
	switch ev.kind {
	case rawEOF:
		return true, nil
	case rawStart:
		return false, doc.handler.handleStart(doc, ev.name)
	case rawText:
		doc.handler.handleText(ev.text)
		return false, nil
	case rawEnd:
		return false, doc.handler.handleEnd(ev.name)
	}
	return false, nil
}

// pumpWhile advances the document for as long as cond holds, stopping
// early once the chunk source is exhausted. Every attribute read and every
// repeated-child view operation is one call to this with a different cond.
func pumpWhile(doc *DocumentElement, cond func() bool) error {
	for cond() {
		exhausted, err := doc.advance()
		if err != nil {
			return err
		}
		if exhausted {
			return nil
		}
	}
	return nil
}

// pumpUntilStarted is pump site A: document construction pumps until the
// parse stack holds the root frame (or the input is exhausted before any
// element appears at all).
func pumpUntilStarted(doc *DocumentElement) error {
	return pumpWhile(doc, func() bool { return len(doc.handler.stack) == 0 })
}
