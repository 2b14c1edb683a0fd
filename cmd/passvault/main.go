// Command passvault encrypts or decrypts a file with a passphrase.
//
// The passphrase is taken from the PASSVAULT_PASSPHRASE environment
// variable (a .env file in the working directory is honored) or prompted
// for on the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/davisbra/passvault"
)

func main() {
	decrypt := flag.BoolP("decrypt", "d", false, "decrypt instead of encrypt")
	output := flag.StringP("output", "o", "", "output file (default: input plus/minus .pv suffix)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *output, *decrypt); err != nil {
		fmt.Fprintln(os.Stderr, "passvault:", err)
		os.Exit(1)
	}
}

func run(input, output string, decrypt bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	codec := passvault.New()
	if decrypt && !codec.IsDataEncrypted(data) {
		return fmt.Errorf("%s is not an encrypted vault", input)
	}

	pass, err := passphrase()
	if err != nil {
		return err
	}

	var out []byte
	if decrypt {
		out, err = codec.PassDecrypt(data, pass)
	} else {
		out, err = codec.PassEncrypt(data, pass)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutput(input, decrypt)
	}
	return os.WriteFile(output, out, 0o600)
}

func defaultOutput(input string, decrypt bool) string {
	const suffix = ".pv"
	if decrypt {
		if len(input) > len(suffix) && input[len(input)-len(suffix):] == suffix {
			return input[:len(input)-len(suffix)]
		}
		return input + ".out"
	}
	return input + suffix
}

func passphrase() ([]byte, error) {
	_ = godotenv.Load()
	if env := os.Getenv("PASSVAULT_PASSPHRASE"); env != "" {
		return []byte(env), nil
	}

	fmt.Fprint(os.Stderr, "Passphrase: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	return pass, nil
}
