package fileops

import (
	"errors"
	"fmt"
	"os"

	"github.com/LFroesch/burrow/internal/logger"
)

// OpKind identifies a queued filesystem operation
type OpKind int

const (
	OpCopy OpKind = iota
	OpMove
	OpRemove
	OpMkdir
)

func (k OpKind) String() string {
	switch k {
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpRemove:
		return "remove"
	case OpMkdir:
		return "mkdir"
	default:
		return "unknown"
	}
}

// Op is one queued operation. Dest is empty for OpRemove; Source is the
// directory to create for OpMkdir.
type Op struct {
	Kind   OpKind
	Source string
	Dest   string
}

// Result is the outcome of a single Op
type Result struct {
	Op
	Err error
}

func (r Result) Error() string {
	if r.Dest != "" {
		return fmt.Sprintf("%s %s -> %s: %v", r.Kind, r.Source, r.Dest, r.Err)
	}
	return fmt.Sprintf("%s %s: %v", r.Kind, r.Source, r.Err)
}

func (r Result) Unwrap() error {
	return r.Err
}

// Report collects one Result per Op in queue order
type Report struct {
	Results []Result
}

// Failed returns the results that carry an error
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded returns how many operations completed
func (r Report) Succeeded() int {
	return len(r.Results) - len(r.Failed())
}

// Err joins every failure, or returns nil when the whole batch applied
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, res)
	}
	return errors.Join(errs...)
}

// Batch queues filesystem operations and runs them together
type Batch struct {
	ops []Op
}

// Copy queues a recursive copy of src to dst
func (b *Batch) Copy(src, dst string) {
	b.ops = append(b.ops, Op{Kind: OpCopy, Source: src, Dest: dst})
}

// Move queues a move; the source is only removed once dst exists
func (b *Batch) Move(src, dst string) {
	b.ops = append(b.ops, Op{Kind: OpMove, Source: src, Dest: dst})
}

// Remove queues a recursive removal
func (b *Batch) Remove(path string) {
	b.ops = append(b.ops, Op{Kind: OpRemove, Source: path})
}

// Mkdir queues a directory creation
func (b *Batch) Mkdir(path string) {
	b.ops = append(b.ops, Op{Kind: OpMkdir, Source: path})
}

// Len returns the number of queued operations
func (b *Batch) Len() int {
	return len(b.ops)
}

// Ops returns a copy of the queued operations
func (b *Batch) Ops() []Op {
	return append([]Op(nil), b.ops...)
}

// Run applies every queued operation in order. A failed operation does not
// stop the ones after it.
func (b *Batch) Run() Report {
	report := Report{Results: make([]Result, 0, len(b.ops))}
	for _, op := range b.ops {
		err := apply(op)
		if err != nil {
			logger.Warn("%s failed: %v", op.Kind, err)
		}
		report.Results = append(report.Results, Result{Op: op, Err: err})
	}
	b.ops = nil
	return report
}

func apply(op Op) error {
	switch op.Kind {
	case OpCopy:
		return CopyFileOrDir(op.Source, op.Dest)
	case OpMove:
		return move(op.Source, op.Dest)
	case OpRemove:
		return Remove(op.Source)
	case OpMkdir:
		return CreateDir(op.Source)
	default:
		return fmt.Errorf("unknown operation %d", op.Kind)
	}
}

func move(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if info.IsDir() && IsWithin(dst, src) {
		return fmt.Errorf("%s -> %s: %w", src, dst, ErrIntoSelf)
	}
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, os.ErrExist)
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	// Rename fails across devices, fall back to copy then delete
	if err := CopyFileOrDir(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}
