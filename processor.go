package csvline

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// Context-action tags recognised on struct fields and carried by Rules.
const (
	actionHash    = "receive.hash"
	actionDecrypt = "load.decrypt"
	actionEncrypt = "store.encrypt"
	actionMask    = "send.mask"
	actionRedact  = "send.redact"
)

var contextActions = []string{actionHash, actionDecrypt, actionEncrypt, actionMask, actionRedact}

// Rule attaches a boundary action to a column.
type Rule struct {
	Column string
	Action string
	Value  string
}

// HashColumn hashes column on Receive.
func HashColumn(column string, algo HashAlgo) Rule {
	return Rule{Column: column, Action: actionHash, Value: string(algo)}
}

// EncryptColumn encrypts column on Store.
func EncryptColumn(column string, algo EncryptAlgo) Rule {
	return Rule{Column: column, Action: actionEncrypt, Value: string(algo)}
}

// DecryptColumn decrypts column on Load.
func DecryptColumn(column string, algo EncryptAlgo) Rule {
	return Rule{Column: column, Action: actionDecrypt, Value: string(algo)}
}

// MaskColumn masks column on Send.
func MaskColumn(column string, mt MaskType) Rule {
	return Rule{Column: column, Action: actionMask, Value: string(mt)}
}

// RedactColumn replaces column with replacement on Send.
func RedactColumn(column, replacement string) Rule {
	return Rule{Column: column, Action: actionRedact, Value: replacement}
}

// Processor applies boundary-aware column transforms to CSV rows.
// Use Receive/Load for ingress and Store/Send for egress.
//
// Processors are safe for concurrent use. SetEncryptor, SetHasher and
// SetMasker may be called at any time to rotate keys.
//
// Validation occurs automatically on first operation. Configure all required
// handlers before the first call to Receive, Load, Store, or Send.
type Processor struct {
	codec    *LineCodec
	header   []string
	typeName string

	mu         sync.RWMutex
	encryptors map[EncryptAlgo]Encryptor
	hashers    map[HashAlgo]Hasher
	maskers    map[MaskType]Masker

	validateOnce sync.Once
	validateErr  error

	// Immutable after construction.
	hashCols    []columnPlan
	decryptCols []columnPlan
	encryptCols []columnPlan
	maskCols    []columnPlan
	redactCols  []columnPlan
}

// columnPlan describes how to transform a single column.
type columnPlan struct {
	index  int
	name   string
	tagVal string
}

// NewProcessor creates a Processor for rows laid out as header. A nil codec
// selects the default dialect. Header names must be unique.
//
// The processor is created with builtin hashers and maskers. Encryptors must
// be configured via SetEncryptor before Store/Load on encrypted columns.
func NewProcessor(header []string, codec *LineCodec, rules ...Rule) (*Processor, error) {
	return newProcessor("", header, codec, rules)
}

// NewProcessorFor creates a Processor whose header and rules come from the
// csv and context-action tags of struct type T:
//
//	type Person struct {
//	    Email    string `csv:"email" store.encrypt:"aes" load.decrypt:"aes" send.mask:"email"`
//	    Password string `csv:"password" receive.hash:"argon2" send.redact:"***"`
//	}
func NewProcessorFor[T any](codec *LineCodec) (*Processor, error) {
	tb, err := bindingsFor[T]()
	if err != nil {
		return nil, err
	}

	var rules []Rule
	for _, c := range tb.columns {
		for _, action := range contextActions {
			if val, ok := c.tags[action]; ok {
				rules = append(rules, Rule{Column: c.name, Action: action, Value: val})
			}
		}
	}
	return newProcessor(tb.typeName, tb.header(), codec, rules)
}

func newProcessor(typeName string, header []string, codec *LineCodec, rules []Rule) (*Processor, error) {
	if codec == nil {
		codec = Default()
	}
	if err := codec.validate(); err != nil {
		return nil, err
	}

	p := &Processor{
		codec:      codec,
		header:     append([]string(nil), header...),
		typeName:   typeName,
		encryptors: make(map[EncryptAlgo]Encryptor),
		hashers:    builtinHashers(),
		maskers:    builtinMaskers(),
	}
	if err := p.plan(rules); err != nil {
		return nil, err
	}

	emitProcessorCreated(context.Background(), typeName, len(header))
	return p, nil
}

// plan resolves rules against the header.
func (p *Processor) plan(rules []Rule) error {
	positions := make(map[string]int, len(p.header))
	for i, name := range p.header {
		if _, dup := positions[name]; dup {
			return newConfigError(ErrDuplicateColumn, "", name)
		}
		positions[name] = i
	}

	for _, r := range rules {
		idx, ok := positions[r.Column]
		if !ok {
			return newConfigError(ErrUnknownColumn, "", r.Column)
		}
		cp := columnPlan{index: idx, name: r.Column, tagVal: r.Value}

		switch r.Action {
		case actionHash:
			if !IsValidHashAlgo(HashAlgo(r.Value)) {
				return newConfigError(ErrInvalidTag, r.Value, r.Column)
			}
			p.hashCols = append(p.hashCols, cp)
		case actionDecrypt:
			if !IsValidEncryptAlgo(EncryptAlgo(r.Value)) {
				return newConfigError(ErrInvalidTag, r.Value, r.Column)
			}
			p.decryptCols = append(p.decryptCols, cp)
		case actionEncrypt:
			if !IsValidEncryptAlgo(EncryptAlgo(r.Value)) {
				return newConfigError(ErrInvalidTag, r.Value, r.Column)
			}
			p.encryptCols = append(p.encryptCols, cp)
		case actionMask:
			if !IsValidMaskType(MaskType(r.Value)) {
				return newConfigError(ErrInvalidTag, r.Value, r.Column)
			}
			p.maskCols = append(p.maskCols, cp)
		case actionRedact:
			// Redact values are arbitrary strings.
			p.redactCols = append(p.redactCols, cp)
		default:
			return newConfigError(ErrInvalidTag, r.Action, r.Column)
		}
	}
	return nil
}

// Header returns a copy of the column layout.
func (p *Processor) Header() []string {
	return append([]string(nil), p.header...)
}

// SetEncryptor registers an encryptor for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor) SetEncryptor(algo EncryptAlgo, enc Encryptor) *Processor {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptors[algo] = enc
	return p
}

// SetHasher registers a hasher for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor) SetHasher(algo HashAlgo, h Hasher) *Processor {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashers[algo] = h
	return p
}

// SetMasker registers a masker for the given type.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor) SetMasker(mt MaskType, m Masker) *Processor {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[mt] = m
	return p
}

// Validate checks that every planned column has its capability registered.
// Validation also runs automatically on first operation.
func (p *Processor) Validate() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCapabilities()
	})
	return p.validateErr
}

func (p *Processor) validateCapabilities() error {
	for _, c := range p.hashCols {
		if _, ok := p.hashers[HashAlgo(c.tagVal)]; !ok {
			return newConfigError(ErrMissingHasher, c.tagVal, c.name)
		}
	}
	for _, c := range p.decryptCols {
		if _, ok := p.encryptors[EncryptAlgo(c.tagVal)]; !ok {
			return newConfigError(ErrMissingEncryptor, c.tagVal, c.name)
		}
	}
	for _, c := range p.encryptCols {
		if _, ok := p.encryptors[EncryptAlgo(c.tagVal)]; !ok {
			return newConfigError(ErrMissingEncryptor, c.tagVal, c.name)
		}
	}
	for _, c := range p.maskCols {
		if _, ok := p.maskers[MaskType(c.tagVal)]; !ok {
			return newConfigError(ErrMissingMasker, c.tagVal, c.name)
		}
	}
	return nil
}

// Receive decodes a line and hashes the receive.hash columns.
// Use for rows coming from external sources (uploads, API requests).
func (p *Processor) Receive(ctx context.Context, line string) ([]string, error) {
	start := time.Now()
	row, err := p.ingress(line, p.applyHash)
	emitBoundary(ctx, SignalReceiveComplete, p.typeName, len(line), time.Since(start), len(p.hashCols), err)
	return row, err
}

// Load decodes a line and decrypts the load.decrypt columns.
// Use for rows coming from storage.
func (p *Processor) Load(ctx context.Context, line string) ([]string, error) {
	start := time.Now()
	row, err := p.ingress(line, p.applyDecrypt)
	emitBoundary(ctx, SignalLoadComplete, p.typeName, len(line), time.Since(start), len(p.decryptCols), err)
	return row, err
}

// Store encrypts the store.encrypt columns of a copy of row and encodes it.
// Use for rows going to storage.
func (p *Processor) Store(ctx context.Context, row []string) (string, error) {
	start := time.Now()
	line, err := p.egress(row, p.applyEncrypt)
	emitBoundary(ctx, SignalStoreComplete, p.typeName, len(line), time.Since(start), len(p.encryptCols), err)
	return line, err
}

// Send masks and redacts a copy of row and encodes it.
// Use for rows going to external destinations (exports, API responses).
func (p *Processor) Send(ctx context.Context, row []string) (string, error) {
	start := time.Now()
	line, err := p.egress(row, func(r []string) error {
		p.applyMask(r)
		p.applyRedact(r)
		return nil
	})
	emitBoundary(ctx, SignalSendComplete, p.typeName, len(line), time.Since(start), len(p.maskCols)+len(p.redactCols), err)
	return line, err
}

func (p *Processor) ingress(line string, transform func([]string) error) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	row, err := p.codec.Decode(line)
	if err != nil {
		return nil, err
	}
	if err := p.checkWidth(row); err != nil {
		return nil, newDeserializeError(line, err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if err := transform(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (p *Processor) egress(row []string, transform func([]string) error) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := p.checkWidth(row); err != nil {
		return "", newSerializeError(len(row), err)
	}

	// Work on a copy so the caller's row is never mutated.
	out := append([]string(nil), row...)

	p.mu.RLock()
	err := transform(out)
	p.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return p.codec.Encode(out)
}

func (p *Processor) checkWidth(row []string) error {
	if len(row) != len(p.header) {
		return fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(row), len(p.header))
	}
	return nil
}

func (p *Processor) applyHash(row []string) error {
	for _, c := range p.hashCols {
		hashed, err := p.hashers[HashAlgo(c.tagVal)].Hash([]byte(row[c.index]))
		if err != nil {
			return newTransformError(ErrHash, "hash", c.name, err)
		}
		row[c.index] = hashed
	}
	return nil
}

func (p *Processor) applyDecrypt(row []string) error {
	for _, c := range p.decryptCols {
		ciphertext, err := base64.StdEncoding.DecodeString(row[c.index])
		if err != nil {
			return newTransformError(ErrDecrypt, "decrypt", c.name, err)
		}
		plaintext, err := p.encryptors[EncryptAlgo(c.tagVal)].Decrypt(ciphertext)
		if err != nil {
			return newTransformError(ErrDecrypt, "decrypt", c.name, err)
		}
		row[c.index] = string(plaintext)
	}
	return nil
}

func (p *Processor) applyEncrypt(row []string) error {
	for _, c := range p.encryptCols {
		ciphertext, err := p.encryptors[EncryptAlgo(c.tagVal)].Encrypt([]byte(row[c.index]))
		if err != nil {
			return newTransformError(ErrEncrypt, "encrypt", c.name, err)
		}
		row[c.index] = base64.StdEncoding.EncodeToString(ciphertext)
	}
	return nil
}

func (p *Processor) applyMask(row []string) {
	for _, c := range p.maskCols {
		row[c.index] = p.maskers[MaskType(c.tagVal)].Mask(row[c.index])
	}
}

func (p *Processor) applyRedact(row []string) {
	for _, c := range p.redactCols {
		row[c.index] = c.tagVal
	}
}
