package cli

import (
	"strings"

	"langsniff/internal/adapters/tsv"
	"langsniff/internal/platform/config"
	classifymod "langsniff/internal/services/classify/module"

	"github.com/spf13/pflag"
)

// options mirrors the command line; `flag` tags name fields in validation messages
type options struct {
	Languages           onceString `validate:"-"`
	PerLine             bool       `flag:"per-line"`
	List                bool       `flag:"list"`
	All                 bool       `flag:"all"`
	Multi               bool       `flag:"multi"`
	Quick               bool       `flag:"quick"`
	Preload             bool       `flag:"preload"`
	Confidence          float64    `flag:"confidence" validate:"gte=0,lte=1"`
	MinLength           int        `flag:"min-length" validate:"gte=0"`
	MinRelativeDistance float64    `flag:"min-relative-distance" validate:"gte=0,lt=0.99"`
	Parallel            bool       `flag:"parallel"`
	Workers             int        `flag:"workers" validate:"gte=0,lte=1024"`
	Delimiter           string     `flag:"delimiter" validate:"field_sep"`
	Verbose             bool       `flag:"verbose"`
}

// bind registers every flag on fs. Env values from cfg are read once here as
// defaults; the parsed values are final and passed on unchanged
func (o *options) bind(fs *pflag.FlagSet, cfg config.Conf) {
	lc := cfg.Prefix("LANGSNIFF_")
	def := classifymod.FromConfig(cfg)
	o.Languages.val = strings.Join(lc.MayCSV("LANGUAGES", nil), ",")

	fs.VarP(&o.Languages, "languages", "l", "comma-separated ISO 639-1 codes to choose from (default: every language)")
	fs.BoolVarP(&o.PerLine, "per-line", "n", false, "classify every input line on its own and echo it as a third column")
	fs.BoolVarP(&o.List, "list", "L", false, "list supported languages and exit")
	fs.BoolVarP(&o.All, "all", "a", false, "print every candidate with its confidence, best first")
	fs.BoolVarP(&o.Multi, "multi", "m", false, "split mixed-language text into spans: start, end, code, text")
	fs.BoolVarP(&o.Quick, "quick", "q", def.Quick, "low accuracy mode: faster, less memory, worse on short text")
	fs.BoolVar(&o.Preload, "preload", def.Preload, "load all language models before classifying")
	fs.Float64VarP(&o.Confidence, "confidence", "c", 0, "minimum confidence in [0,1]; lower results are undetermined")
	fs.IntVarP(&o.MinLength, "min-length", "M", 0, "minimum number of letters; shorter units are undetermined")
	fs.Float64VarP(&o.MinRelativeDistance, "min-relative-distance", "d", def.MinRelativeDistance,
		"minimum distance between the two best candidates in [0,0.99)")
	fs.BoolVarP(&o.Parallel, "parallel", "p", false, "classify units on a worker pool")
	fs.IntVarP(&o.Workers, "workers", "w", def.Workers, "worker pool size with --parallel")
	fs.StringVar(&o.Delimiter, "delimiter", lc.MayString("DELIMITER", tsv.DefaultDelimiter), "output field separator")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging on stderr")

	fs.SortFlags = false
}

// onceString is a string flag that remembers being given more than once.
// A value preset from the environment does not count as given
// The repeat is reported after --list has had its chance to run
type onceString struct {
	val      string
	set      bool
	repeated bool
}

func (v *onceString) String() string { return v.val }

func (v *onceString) Set(s string) error {
	if v.set {
		v.repeated = true
	}
	v.val, v.set = s, true
	return nil
}

func (v *onceString) Type() string { return "codes" }
