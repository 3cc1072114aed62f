package parser

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// maxSummaryLen truncates runaway summaries; nobody reads past this.
	maxSummaryLen = 1000

	// maxCertLineLen filters prose out of a certifications region.
	maxCertLineLen = 200

	maxCertifications = 20
)

// Parser converts raw resume text into a structured record. A zero-value
// Parser is not usable; construct one with New.
type Parser struct {
	vocab      *Vocabulary
	recognizer ner.Recognizer
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecognizer sets the named-entity recognizer used for name
// extraction. Without one the parsed record simply has no name.
func WithRecognizer(r ner.Recognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

// WithVocabulary replaces the built-in skill and section vocabulary.
func WithVocabulary(v *Vocabulary) Option {
	return func(p *Parser) { p.vocab = v }
}

// New constructs a Parser with the default vocabulary and no recognizer.
func New(opts ...Option) *Parser {
	p := &Parser{vocab: DefaultVocabulary()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts raw resume text into a StructuredResume. The same input
// always yields the same output, recognizer aside. Field extractors are
// independent; a field that cannot be extracted is left at its zero value
// rather than failing the parse.
func (p *Parser) Parse(ctx context.Context, raw string) (*types.StructuredResume, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, NewInputError("text is empty")
	}
	if !utf8.ValidString(raw) {
		return nil, NewInputError("text is not valid UTF-8")
	}

	sections := SegmentSections(raw, p.vocab)
	resume := &types.StructuredResume{}

	// Extractors touch disjoint fields, so they run concurrently. Only the
	// contact extractor can do network work; the rest are pure.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resume.Contact = ExtractContact(gctx, raw, p.recognizer)
		return nil
	})
	g.Go(func() error {
		resume.Skills = MatchSkills(raw, sections[sectionSkills], p.vocab)
		return nil
	})
	g.Go(func() error {
		// Experience only comes from a labeled section. Scanning the whole
		// document would turn every paragraph of a headerless resume into
		// a phantom job entry.
		resume.Experience = ParseExperience(sections[sectionExperience])
		return nil
	})
	g.Go(func() error {
		region, ok := sections[sectionEducation]
		if !ok {
			// No education heading. Degree keywords are distinctive
			// enough to anchor a whole-document scan.
			resume.Education = ScanEducation(raw, p.vocab)
			return nil
		}
		resume.Education = ParseEducation(region, p.vocab)
		return nil
	})
	g.Go(func() error {
		resume.Summary = extractSummary(sections[sectionSummary])
		return nil
	})
	g.Go(func() error {
		resume.Certifications = extractCertifications(sections[sectionCertifications])
		return nil
	})
	g.Go(func() error {
		resume.Languages = matchLanguages(raw, p.vocab)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Collection fields marshal as [] rather than null.
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if resume.Experience == nil {
		resume.Experience = []types.WorkEntry{}
	}
	if resume.Education == nil {
		resume.Education = []types.EduEntry{}
	}
	if resume.Certifications == nil {
		resume.Certifications = []string{}
	}
	if resume.Languages == nil {
		resume.Languages = []string{}
	}

	return resume, nil
}

// extractSummary collapses the summary region's whitespace into single
// spaces and truncates it to a sane length.
func extractSummary(region string) string {
	summary := strings.Join(strings.Fields(region), " ")
	if len(summary) > maxSummaryLen {
		summary = strings.TrimSpace(summary[:maxSummaryLen])
	}
	return summary
}

// extractCertifications turns a certifications region into one entry per
// non-empty line, bullets stripped.
func extractCertifications(region string) []string {
	if region == "" {
		return nil
	}

	var certs []string
	for _, line := range strings.Split(region, "\n") {
		cert, _ := stripBullet(strings.TrimSpace(line))
		if cert == "" || len(cert) >= maxCertLineLen {
			continue
		}
		certs = append(certs, cert)
		if len(certs) == maxCertifications {
			break
		}
	}
	return certs
}

// matchLanguages scans the full text for known human-language names, in
// order of first appearance.
func matchLanguages(text string, vocab *Vocabulary) []string {
	lower := strings.ToLower(text)

	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, lang := range vocab.Languages {
		needle := strings.ToLower(lang)
		for from := 0; from < len(lower); {
			i := strings.Index(lower[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(needle)
			from = start + 1
			if wordBounded(lower, start, end) {
				hits = append(hits, hit{pos: start, name: lang})
				break
			}
		}
	}

	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	languages := make([]string, 0, len(hits))
	for _, h := range hits {
		languages = append(languages, h.name)
	}
	return languages
}
