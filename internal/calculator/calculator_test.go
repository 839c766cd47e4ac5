package calculator

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	scerror "github.com/msto63/strcalc/foundation/core/error"
	sclog "github.com/msto63/strcalc/foundation/core/log"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty input", "", 0},
		{"single number", "1", 1},
		{"two numbers", "1,5", 6},
		{"many numbers", "1,2,3,4,5,6,7,8,9", 45},
		{"newline and comma", "1\n2,3", 6},
		{"only newlines", "1\n2\n3", 6},
		{"custom single char", "//;\n1;2", 3},
		{"custom pipe", "//|\n1|2|3", 6},
		{"custom dot", "//.\n1.2.3", 6},
		{"custom multi char without brackets", "//sep\n1sep2sep3", 6},
		{"bracketed multi char", "//[***]\n1***2***3", 6},
		{"multiple delimiters", "//[*][%]\n1*2%3", 6},
		{"multiple multi char delimiters", "//[**][%%]\n1**2%%3", 6},
		{"overlapping delimiters", "//[*][**]\n1**2*3", 6},
		{"newline with custom delimiter", "//;\n1;2\n3", 6},
		{"comma is not a delimiter under a header", "//;\n1;2;3", 6},
		{"above bound ignored", "2,1001", 2},
		{"bound itself counts", "2,1000", 1002},
		{"above bound with header", "//;\n1;1001;3", 4},
		{"consecutive delimiters", "1,,2", 3},
		{"leading and trailing delimiters", ",1,2,\n", 3},
		{"header with empty body", "//;\n", 0},
		{"only delimiters", ",\n,", 0},
		{"zero", "0,0", 0},
		{"negative zero", "-0,1", 1},
		{"explicit plus sign", "+1,2", 3},
		{"regex metacharacters", "//[.*][+?]\n1.*2+?3", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.input)
			if err != nil {
				t.Fatalf("Add(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Add(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddNegatives(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantMsg string
	}{
		{"single negative", "//;\n1;-2;3", []int{-2}, "negatives not allowed: -2"},
		{"all negatives in order", "-1,2,-3\n-4", []int{-1, -3, -4}, "negatives not allowed: -1,-3,-4"},
		{"duplicates kept", "-5,-5", []int{-5, -5}, "negatives not allowed: -5,-5"},
		{"large negative", "-2000,1", []int{-2000}, "negatives not allowed: -2000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.input)
			if err == nil {
				t.Fatalf("Add(%q) = %d, want error", tt.input, got)
			}
			if got != 0 {
				t.Errorf("Add(%q) returned partial sum %d", tt.input, got)
			}

			var negErr *NegativeNumberError
			if !errors.As(err, &negErr) {
				t.Fatalf("error %T is not a *NegativeNumberError", err)
			}
			if diff := cmp.Diff(tt.want, negErr.Values); diff != "" {
				t.Errorf("Values mismatch (-want +got):\n%s", diff)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !errors.Is(err, ErrNegativeNumber) {
				t.Error("errors.Is(err, ErrNegativeNumber) = false")
			}
			if !scerror.HasCode(err, scerror.CodeNegativeNumber) {
				t.Error("error does not carry NEGATIVE_NUMBER")
			}
		})
	}
}

func TestAddInvalidNumbers(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantToken  string
		wantOffset int
	}{
		{"letter", "1,a", "a", 2},
		{"space is not trimmed", "1, 2", " 2", 2},
		{"undeclared delimiter", "//;\n1,2", "1,2", 4},
		{"decimal", "1.5", "1.5", 0},
		{"overflow", "1,99999999999999999999999", "99999999999999999999999", 2},
		{"custom delimiter offset", "//[**]\n1**x", "x", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.input)
			var invErr *InvalidNumberError
			if !errors.As(err, &invErr) {
				t.Fatalf("Add(%q) error = %v, want *InvalidNumberError", tt.input, err)
			}
			if invErr.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", invErr.Token, tt.wantToken)
			}
			if invErr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", invErr.Offset, tt.wantOffset)
			}
			if !errors.Is(err, ErrInvalidNumber) {
				t.Error("errors.Is(err, ErrInvalidNumber) = false")
			}
			if scerror.GetCode(err) != scerror.CodeInvalidNumber {
				t.Errorf("code = %v, want INVALID_NUMBER", scerror.GetCode(err))
			}
		})
	}
}

func TestAddInvalidNumberWrapsConversionError(t *testing.T) {
	_, err := Add("1,99999999999999999999999")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("errors.Is(err, strconv.ErrRange) = false for %v", err)
	}

	_, err = Add("x")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("errors.Is(err, strconv.ErrSyntax) = false for %v", err)
	}
}

func TestAddIntRange(t *testing.T) {
	got, err := Add("1," + strconv.Itoa(math.MaxInt))
	if err != nil || got != 1 {
		t.Errorf("Add(MaxInt) = %d, %v, want 1", got, err)
	}

	_, err = Add("1," + strconv.FormatUint(uint64(math.MaxInt)+1, 10))
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Add(MaxInt+1) error = %v, want ErrRange", err)
	}
}

func TestAddMalformedHeader(t *testing.T) {
	for _, input := range []string{"//;", "//\n1", "//[*\n1*2", "//[]\n1", "//[*]x\n1*2"} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			_, err := Add(input)
			if !errors.Is(err, ErrMalformedHeader) {
				t.Fatalf("Add(%q) error = %v, want ErrMalformedHeader", input, err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "empty",
			input: "",
			want:  Result{Delimiters: []string{","}},
		},
		{
			name:  "default delimiters",
			input: "1\n2,3",
			want:  Result{Sum: 6, Numbers: []int{1, 2, 3}, Delimiters: []string{","}},
		},
		{
			name:  "ignored numbers",
			input: "//[*][%]\n1*2000%3*1001",
			want: Result{
				Sum:        4,
				Numbers:    []int{1, 2000, 3, 1001},
				Ignored:    []int{2000, 1001},
				Delimiters: []string{"*", "%"},
			},
		},
	}

	calc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Evaluate(tt.input)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Evaluate(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	calc := New(WithUpperBound(10), WithDefaultDelimiter(";"))

	got, err := calc.Add("1;10;11\n2")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got != 13 {
		t.Errorf("Add() = %d, want 13", got)
	}

	// headers still override the configured default
	got, err = calc.Add("//,\n1,2")
	if err != nil || got != 3 {
		t.Errorf("Add(header) = %d, %v, want 3", got, err)
	}

	if New(WithDefaultDelimiter("")).Options().DefaultDelimiter != DefaultDelimiter {
		t.Error("empty default delimiter should keep the default")
	}

	opts := New(WithOptions(Options{UpperBound: 5, DefaultDelimiter: "|"})).Options()
	if opts.UpperBound != 5 || opts.DefaultDelimiter != "|" {
		t.Errorf("WithOptions() = %+v", opts)
	}

	for _, bound := range []int{0, -1} {
		if got := New(WithUpperBound(bound)).Options().UpperBound; got != DefaultUpperBound {
			t.Errorf("WithUpperBound(%d) bound = %d, want %d", bound, got, DefaultUpperBound)
		}
	}

	// a partially filled Options keeps the default bound
	got, err = New(WithOptions(Options{DefaultDelimiter: ";"})).Add("1;2;1001")
	if err != nil || got != 3 {
		t.Errorf("Add() with partial options = %d, %v, want 3", got, err)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := sclog.NewWithConfig(sclog.Config{
		Level:  sclog.LevelDebug,
		Format: sclog.FormatLogfmt,
		Output: &buf,
	})

	if _, err := New(WithLogger(logger)).Add("//;\n1;2"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `message="delimiters resolved"`) {
		t.Errorf("missing delimiter log line in %q", out)
	}
	if !strings.Contains(out, "sum=3") {
		t.Errorf("missing sum in %q", out)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	inputs := []string{"", "1,2", "//[*][%]\n1*2%3", "-1,2", "1,x"}
	for _, input := range inputs {
		firstSum, firstErr := Add(input)
		for i := 0; i < 5; i++ {
			sum, err := Add(input)
			if sum != firstSum || (err == nil) != (firstErr == nil) {
				t.Fatalf("Add(%q) run %d = %d, %v; first = %d, %v", input, i, sum, err, firstSum, firstErr)
			}
			if err != nil && err.Error() != firstErr.Error() {
				t.Fatalf("Add(%q) error changed: %q vs %q", input, err, firstErr)
			}
		}
	}
}

func TestAddSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	delimiterSets := [][]string{
		{","},
		{";"},
		{"***"},
		{"*", "%"},
		{"ab", "c"},
	}

	for i := 0; i < 500; i++ {
		delims := delimiterSets[rng.Intn(len(delimiterSets))]
		count := rng.Intn(20)
		want := 0
		var body strings.Builder
		for j := 0; j < count; j++ {
			n := rng.Intn(1001)
			want += n
			if j > 0 {
				if rng.Intn(4) == 0 {
					body.WriteString("\n")
				} else {
					body.WriteString(delims[rng.Intn(len(delims))])
				}
			}
			body.WriteString(strconv.Itoa(n))
		}

		input := body.String()
		if len(delims) > 1 || delims[0] != "," {
			input = "//" + bracketed(delims) + "\n" + input
		}

		got, err := Add(input)
		if err != nil {
			t.Fatalf("Add(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("Add(%q) = %d, want %d", input, got, want)
		}
	}
}

func bracketed(delims []string) string {
	var b strings.Builder
	for _, d := range delims {
		b.WriteString("[" + d + "]")
	}
	return b.String()
}

func TestCalculatorConcurrentUse(t *testing.T) {
	calc := New()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			input := "//;\n" + strconv.Itoa(n) + ";1"
			got, err := calc.Add(input)
			if err != nil {
				errs <- err
				return
			}
			if got != n+1 {
				errs <- errors.New("wrong sum for " + strconv.Quote(input))
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func FuzzAdd(f *testing.F) {
	for _, seed := range []string{"", "1,2", "1\n2,3", "//;\n1;2", "//[***]\n1***2", "//[*][%]\n1*2%3", "-1,2", "//[\n"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		sum, err := Add(input)
		again, errAgain := Add(input)
		if sum != again || (err == nil) != (errAgain == nil) {
			t.Fatalf("Add(%q) not deterministic", input)
		}
		if err != nil {
			if sum != 0 {
				t.Fatalf("Add(%q) returned %d with error %v", input, sum, err)
			}
			if !errors.Is(err, ErrNegativeNumber) && !errors.Is(err, ErrInvalidNumber) && !errors.Is(err, ErrMalformedHeader) {
				t.Fatalf("Add(%q) returned unexpected error %v", input, err)
			}
		}
	})
}
