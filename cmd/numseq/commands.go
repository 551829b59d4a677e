package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vdparikh/numseq"
	"github.com/vdparikh/numseq/tinknumseq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/unicode/norm"
)

// config is the resolved configuration of the encode command.
// Precedence is flag, then NUMSEQ_* environment variable, then default.
type config struct {
	Rounds    int
	Normalize string
	Strict    bool
	Workers   int
	Keyset    string
	Verbose   bool
}

func newRootCmd(v *viper.Viper, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v.SetEnvPrefix("NUMSEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "numseq",
		Short:         "Encode text into deterministic numeric sequences",
		Long:          `numseq turns every character of its input into four decimal digits. The transform is deterministic and not reversible; it is an obfuscation, not encryption.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newEncodeCmd(v), newKeysetCmd(v))
	return rootCmd
}

func newEncodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Print the numeric sequence of the arguments, or of stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			defer func() { _ = logger.Sync() }()

			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				logger.Error("failed to read input", zap.Error(err))
				return err
			}

			enc, err := buildEncoder(cfg, logger)
			if err != nil {
				logger.Error("invalid configuration", zap.Error(err))
				return err
			}

			out, err := enc.EncodeContext(cmd.Context(), text)
			if err != nil {
				logger.Error("failed to encode", zap.Error(err))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntP("rounds", "r", numseq.DefaultRounds, "number of encoding rounds")
	cmd.Flags().String("normalize", "none", "Unicode normalization before encoding: none, nfc, nfd, nfkc, nfkd")
	cmd.Flags().Bool("strict", false, "reject input that is not valid UTF-8")
	cmd.Flags().IntP("workers", "w", 1, "goroutines used for large inputs")
	cmd.Flags().String("keyset", "", "read the round count from a JSON keyset file")
	for _, name := range []string{"rounds", "normalize", "strict", "workers", "keyset"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

func newKeysetCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyset",
		Short: "Write a JSON keyset holding numeric sequence parameters to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			rounds := v.GetInt("keyset_rounds")
			if rounds > numseq.MaxRounds {
				return fmt.Errorf("%w: %d (maximum %d)", numseq.ErrTooManyRounds, rounds, numseq.MaxRounds)
			}
			if rounds < 1 {
				return fmt.Errorf("invalid round count %d", rounds)
			}

			handle, err := tinknumseq.NewKeysetHandle(uint32(rounds))
			if err != nil {
				return err
			}
			return tinknumseq.WriteKeyset(handle, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntP("rounds", "r", numseq.DefaultRounds, "number of encoding rounds stored in the keyset")
	_ = v.BindPFlag("keyset_rounds", cmd.Flags().Lookup("rounds"))

	return cmd
}

func loadConfig(v *viper.Viper) config {
	return config{
		Rounds:    v.GetInt("rounds"),
		Normalize: strings.ToLower(v.GetString("normalize")),
		Strict:    v.GetBool("strict"),
		Workers:   v.GetInt("workers"),
		Keyset:    v.GetString("keyset"),
		Verbose:   v.GetBool("verbose"),
	}
}

// buildEncoder turns cfg into an Encoder. When a keyset is given its round
// count replaces cfg.Rounds.
func buildEncoder(cfg config, logger *zap.Logger) (*numseq.Encoder, error) {
	rounds := cfg.Rounds
	if cfg.Keyset != "" {
		r, err := roundsFromKeyset(cfg.Keyset)
		if err != nil {
			return nil, err
		}
		logger.Debug("using rounds from keyset", zap.String("keyset", cfg.Keyset), zap.Int("rounds", r))
		rounds = r
	}

	opts := []numseq.Option{
		numseq.WithRounds(rounds),
		numseq.WithParallelism(cfg.Workers),
		numseq.WithLogger(logger),
	}
	if cfg.Strict {
		opts = append(opts, numseq.WithStrictUTF8())
	}
	switch cfg.Normalize {
	case "", "none":
	case "nfc":
		opts = append(opts, numseq.WithNormalization(norm.NFC))
	case "nfd":
		opts = append(opts, numseq.WithNormalization(norm.NFD))
	case "nfkc":
		opts = append(opts, numseq.WithNormalization(norm.NFKC))
	case "nfkd":
		opts = append(opts, numseq.WithNormalization(norm.NFKD))
	default:
		return nil, fmt.Errorf("unknown normalization form %q", cfg.Normalize)
	}

	return numseq.New(opts...)
}

func roundsFromKeyset(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open keyset: %w", err)
	}
	defer f.Close()

	handle, err := tinknumseq.ReadKeyset(f)
	if err != nil {
		return 0, err
	}
	if err := tinknumseq.Register(); err != nil {
		return 0, fmt.Errorf("failed to register key manager: %w", err)
	}
	primitive, err := tinknumseq.New(handle)
	if err != nil {
		return 0, err
	}

	enc, ok := primitive.(*numseq.Encoder)
	if !ok {
		return 0, fmt.Errorf("keyset primitive is %T, not an encoder", primitive)
	}
	return enc.Rounds(), nil
}

// readInput joins args with spaces, or reads all of in when there are no args.
// A single trailing line break from stdin is dropped.
func readInput(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named("numseq")
}
