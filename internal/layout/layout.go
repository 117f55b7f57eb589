// Copyright Fieber IT, 2026. All rights reserved.

// Package layout renders parsed contact cards into A4 PDF contact sheets.
// The sheet has a fixed visual structure: name and organization block,
// labelled phone/email/address/website rows sharing one label column, a
// photo in the top right corner, social profiles with clickable links,
// free-text notes, and a metadata footer.
package layout

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/fieberit/vcard2pdf/internal/labels"
	"github.com/fieberit/vcard2pdf/internal/vcard"
	"github.com/fieberit/vcard2pdf/pkg/types"
)

// Page geometry in points (A4 portrait).
const (
	pageMargin  = 50.0
	topStart    = 60.0
	bottomGuard = 70.0

	nameFontSize    = 20.0
	headingFontSize = 13.0
	orgFontSize     = 12.0
	labelFontSize   = 11.0
	valueFontSize   = 11.0
	footerFontSize  = 8.0

	leading    = 14.0
	sectionGap = 24.0
	labelGap   = 6.0

	photoMaxSize = 150.0
	photoTop     = 80.0
)

const (
	labelFont = "Helvetica"
	photoName = "contact-photo"
)

// Options configures the renderer.
type Options struct {
	// Labels is the label catalog; nil selects the English catalog.
	Labels labels.Catalog

	// Version is the tool version printed in the footer.
	Version string

	// Copyright is an optional footer line.
	Copyright string
}

// Renderer renders cards into PDF documents. Safe to reuse across files.
type Renderer struct {
	opts Options
}

// New returns a Renderer with defaults filled in.
func New(opts Options) *Renderer {
	if opts.Labels == nil {
		opts.Labels = labels.English()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Renderer{opts: opts}
}

// Render lays out one card and writes the PDF to w. sourceName is the
// source file name, used as the page title when the card has no FN.
func (r *Renderer) Render(card *types.Card, sourceName string, w io.Writer) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	title := card.FormattedName
	if title == "" {
		title = sourceName
	}
	pdf.SetTitle(title, true)
	pdf.SetCreator("vcard2pdf "+r.opts.Version, true)

	pageW, pageH := pdf.GetPageSize()
	s := &sheet{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		cat:   r.opts.Labels,
		pageW: pageW,
		pageH: pageH,
		y:     topStart,
	}
	pdf.AddPage()
	s.labelW = s.widestColumnLabel()

	s.drawPhoto(card.Photo)

	pdf.SetFont(labelFont, "B", nameFontSize)
	pdf.Text(pageMargin, s.y, s.tr(title))
	s.y += leading

	s.drawOrgBlock(card)
	s.spacing(sectionGap)

	s.drawPhones(card.Phones)
	s.drawEmails(card.Emails)
	s.drawAddresses(card.Addresses)
	s.drawURLs(card.URLs)
	s.drawSocial(card.SocialProfiles)
	s.drawNotes(card.Notes)

	s.drawFooter(card, r.opts)

	if pdf.Err() {
		return fmt.Errorf("rendering %s: %w", sourceName, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf for %s: %w", sourceName, err)
	}
	return nil
}

// sheet tracks the drawing cursor for one document. y is the baseline of
// the next text row, measured from the top of the page.
type sheet struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	cat    labels.Catalog
	pageW  float64
	pageH  float64
	y      float64
	labelW float64
}

// widestColumnLabel measures the known field labels and returns the widest,
// so every labelled value starts at the same x regardless of which labels a
// card actually uses.
func (s *sheet) widestColumnLabel() float64 {
	s.pdf.SetFont(labelFont, "B", labelFontSize)
	var max float64
	for _, key := range labels.ColumnKeys() {
		if w := s.pdf.GetStringWidth(s.tr(s.cat.Get(key) + ":")); w > max {
			max = w
		}
	}
	return max
}

func (s *sheet) valueX() float64 {
	return pageMargin + s.labelW + labelGap
}

// breakPage starts a new page when the cursor has run into the bottom guard.
func (s *sheet) breakPage() {
	if s.y > s.pageH-bottomGuard {
		s.pdf.AddPage()
		s.y = topStart
	}
}

func (s *sheet) spacing(amount float64) {
	s.y += amount
}

func (s *sheet) heading(text string) {
	s.breakPage()
	s.pdf.SetFont(labelFont, "B", headingFontSize)
	s.pdf.Text(pageMargin, s.y, s.tr(text))
	s.y += leading
}

// lines draws text line by line at the left margin, breaking pages as needed.
func (s *sheet) lines(text string, size float64) {
	if text == "" {
		return
	}
	for _, line := range splitLines(text) {
		s.breakPage()
		s.pdf.SetFont(labelFont, "", size)
		s.pdf.Text(pageMargin, s.y, s.tr(line))
		s.y += leading
	}
}

// labelRow draws one "Label: value" row. An empty label puts the value at
// the left margin instead of the shared value column.
func (s *sheet) labelRow(label, value string) {
	s.breakPage()
	if label == "" {
		s.pdf.SetFont(labelFont, "", valueFontSize)
		s.pdf.Text(pageMargin, s.y, s.tr(value))
		s.y += leading
		return
	}
	s.pdf.SetFont(labelFont, "B", labelFontSize)
	s.pdf.Text(pageMargin, s.y, s.tr(label+":"))
	s.pdf.SetFont(labelFont, "", valueFontSize)
	s.pdf.Text(s.valueX(), s.y, s.tr(value))
	s.y += leading
}

// labelParagraph draws a multi-line value with the label only on the first
// line; continuation lines stay in the value column.
func (s *sheet) labelParagraph(label string, lines []string) {
	if len(lines) == 0 {
		return
	}
	s.breakPage()
	for i, line := range lines {
		s.breakPage()
		if i == 0 {
			s.pdf.SetFont(labelFont, "B", labelFontSize)
			s.pdf.Text(pageMargin, s.y, s.tr(label+":"))
		}
		s.pdf.SetFont(labelFont, "", valueFontSize)
		s.pdf.Text(s.valueX(), s.y, s.tr(line))
		s.y += leading
	}
}

// drawPhoto places the contact photo in the top right corner, scaled to fit
// a 150x150pt box without upscaling. Undecodable image data is skipped.
func (s *sheet) drawPhoto(photo []byte) {
	if len(photo) == 0 {
		return
	}
	_, kind, err := image.DecodeConfig(bytes.NewReader(photo))
	if err != nil {
		return
	}
	var imgType string
	switch kind {
	case "jpeg":
		imgType = "JPG"
	case "png":
		imgType = "PNG"
	case "gif":
		imgType = "GIF"
	default:
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imgType}
	info := s.pdf.RegisterImageOptionsReader(photoName, opts, bytes.NewReader(photo))
	if s.pdf.Err() {
		// Registration failures (e.g. interlaced PNGs) must not poison
		// the document error state; the sheet renders without the photo.
		s.pdf.ClearError()
		return
	}
	if info == nil {
		return
	}

	iw, ih := info.Width(), info.Height()
	if iw <= 0 || ih <= 0 {
		return
	}
	scale := photoMaxSize / iw
	if v := photoMaxSize / ih; v < scale {
		scale = v
	}
	if scale > 1 {
		scale = 1
	}
	w, h := iw*scale, ih*scale
	s.pdf.ImageOptions(photoName, s.pageW-pageMargin-w, photoTop, w, h, false, opts, 0, "")
}

// drawOrgBlock renders the organization line and the Position/Department rows.
func (s *sheet) drawOrgBlock(card *types.Card) {
	if card.Organization != "" {
		s.lines(card.Organization, orgFontSize)
	}
	if card.Title != "" || card.Department != "" {
		s.spacing(leading)
	}
	if card.Title != "" {
		s.labelParagraph(s.cat.Get(labels.Position), []string{card.Title})
	}
	if card.Department != "" {
		s.labelParagraph(s.cat.Get(labels.Department), []string{card.Department})
	}
}

// drawPhones renders the phone section.
func (s *sheet) drawPhones(phones []types.Property) {
	if len(phones) == 0 {
		return
	}
	s.heading(s.cat.Get(labels.PhoneHeading))

	for i, label := range phoneLabels(phones, s.cat) {
		s.labelRow(label, phones[i].Value)
	}
	s.spacing(sectionGap)
}

// phoneLabels maps each phone entry to its row label. The first work
// number is labelled as the main office line; later work numbers get the
// plain work label. Unclassified numbers get no label.
func phoneLabels(phones []types.Property, cat labels.Catalog) []string {
	out := make([]string, len(phones))
	seenWork := false
	for i, p := range phones {
		switch vcard.ClassifyPhone(p.Params) {
		case vcard.ClassMobile:
			out[i] = cat.Get(labels.Mobile)
		case vcard.ClassWork:
			if !seenWork {
				out[i] = cat.Get(labels.MainOffice)
				seenWork = true
			} else {
				out[i] = cat.Get(labels.Work)
			}
		case vcard.ClassHome:
			out[i] = cat.Get(labels.Home)
		}
	}
	return out
}

func (s *sheet) drawEmails(emails []types.Property) {
	if len(emails) == 0 {
		return
	}
	heading := s.cat.Get(labels.EmailHeading)
	if len(emails) > 1 {
		heading = s.cat.Get(labels.EmailHeadingPlural)
	}
	s.heading(heading)

	for _, e := range emails {
		var label string
		switch vcard.ClassifyPlace(e.Params) {
		case vcard.ClassWork:
			label = s.cat.Get(labels.Work)
		case vcard.ClassHome:
			label = s.cat.Get(labels.Home)
		}
		s.labelRow(label, e.Value)
	}
	s.spacing(sectionGap)
}

func (s *sheet) drawAddresses(addresses []types.Property) {
	if len(addresses) == 0 {
		return
	}
	heading := s.cat.Get(labels.AddressHeading)
	if len(addresses) > 1 {
		heading = s.cat.Get(labels.AddressHeadingPlural)
	}
	s.heading(heading)

	for _, a := range addresses {
		label := s.cat.Get(labels.Address)
		switch vcard.ClassifyPlace(a.Params) {
		case vcard.ClassWork:
			label = s.cat.Get(labels.Work)
		case vcard.ClassHome:
			label = s.cat.Get(labels.Home)
		}
		s.labelParagraph(label, vcard.AddressLines(a.Value))
		s.spacing(6)
	}
	s.spacing(sectionGap)
}

// drawURLs renders the website section. Untyped URLs fall back to
// "Homepage" when the card has a single URL, "Website" otherwise.
func (s *sheet) drawURLs(urls []types.Property) {
	if len(urls) == 0 {
		return
	}
	heading := s.cat.Get(labels.WebsiteHeading)
	if len(urls) > 1 {
		heading = s.cat.Get(labels.WebsiteHeadingPlural)
	}
	s.heading(heading)

	single := len(urls) == 1
	for _, u := range urls {
		s.labelRow(urlLabel(u.Params, single, s.cat), u.Value)
	}
	s.spacing(sectionGap)
}

// urlLabel returns the label for a website row. Untyped URLs fall back to
// the homepage label when the card has a single URL, the website label
// otherwise.
func urlLabel(params []string, single bool, cat labels.Catalog) string {
	switch vcard.ClassifyPlace(params) {
	case vcard.ClassWork:
		return cat.Get(labels.Work)
	case vcard.ClassHome:
		return cat.Get(labels.Home)
	}
	if single {
		return cat.Get(labels.Homepage)
	}
	return cat.Get(labels.Website)
}

// drawSocial renders social profiles as bullet rows. Recognized networks
// get their label in the shared label column and the handle becomes a
// clickable link to the profile.
func (s *sheet) drawSocial(profiles []types.Property) {
	if len(profiles) == 0 {
		return
	}
	s.heading(s.cat.Get(labels.SocialHeading))

	const bullet = "• "
	s.pdf.SetFont(labelFont, "", valueFontSize)
	bulletW := s.pdf.GetStringWidth(s.tr(bullet))

	networkLabels := map[vcard.Network]string{
		vcard.NetworkFacebook:  labels.Facebook,
		vcard.NetworkXing:      labels.Xing,
		vcard.NetworkLinkedIn:  labels.LinkedIn,
		vcard.NetworkInstagram: labels.Instagram,
		vcard.NetworkTwitter:   labels.Twitter,
	}

	for _, p := range profiles {
		network := vcard.ClassifyNetwork(p.Params)
		handle := vcard.Handle(p.Value)

		s.breakPage()
		s.pdf.SetFont(labelFont, "", valueFontSize)
		s.pdf.Text(pageMargin, s.y, s.tr(bullet))

		if key, ok := networkLabels[network]; ok {
			s.pdf.SetFont(labelFont, "B", labelFontSize)
			s.pdf.Text(pageMargin+bulletW, s.y, s.tr(s.cat.Get(key)+":"))
		}

		s.pdf.SetFont(labelFont, "", valueFontSize)
		s.pdf.Text(s.valueX(), s.y, s.tr(handle))

		if url := ProfileURL(network, handle); url != "" {
			textW := s.pdf.GetStringWidth(s.tr(handle))
			s.pdf.LinkString(s.valueX(), s.y-10, textW, 12, url)
		}

		s.y += leading
	}
	s.spacing(sectionGap)
}

func (s *sheet) drawNotes(notes []string) {
	if len(notes) == 0 {
		return
	}
	s.spacing(sectionGap)
	s.heading(s.cat.Get(labels.NotesHeading))
	for _, note := range notes {
		s.lines(note, valueFontSize)
	}
}

// drawFooter draws the generator line, optional copyright, and the vCard
// metadata on the current (last) page.
func (s *sheet) drawFooter(card *types.Card, opts Options) {
	s.pdf.SetFont(labelFont, "", footerFontSize)

	generated := fmt.Sprintf(s.cat.Get(labels.GeneratedBy), opts.Version)
	s.pdf.Text(pageMargin, s.pageH-40, s.tr(generated))
	if opts.Copyright != "" {
		s.pdf.Text(pageMargin, s.pageH-30, s.tr(opts.Copyright))
	}

	var meta string
	if card.Version != "" {
		meta = "vCard-Version " + card.Version
	}
	if card.ProdID != "" {
		if meta != "" {
			meta += " · "
		}
		meta += "PRODID " + card.ProdID
	}
	if meta != "" {
		w := s.pdf.GetStringWidth(s.tr(meta))
		s.pdf.Text(s.pageW-pageMargin-w, s.pageH-30, s.tr(meta))
	}
}

// splitLines splits on newlines without dropping interior empty lines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
