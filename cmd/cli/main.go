package main

import (
	"flag"
	"fmt"
	"os"

	"AESCipherService/algorithm/aescipher"
)

func main() {
	var (
		keyFlag     = flag.String("key", "", "32 hex chars or 16 text chars")
		modeFlag    = flag.String("mode", "ecb", "cipher mode: ecb or cfb")
		ivFlag      = flag.String("iv", "", "IV for cfb (32 hex chars or 16 text chars); generated when omitted")
		decryptFlag = flag.Bool("decrypt", false, "decrypt hex input instead of encrypting text")
	)
	flag.Parse()

	if *keyFlag == "" || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s -key KEY [-mode ecb|cfb] [-iv IV] [-decrypt] TEXT\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	mode, err := aescipher.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	input := flag.Arg(0)

	if *decryptFlag {
		plaintext, err := aescipher.Decrypt(input, *keyFlag, mode, *ivFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(plaintext)
		return
	}

	cipherHex, ivHex, err := aescipher.Encrypt(input, *keyFlag, mode, *ivFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(cipherHex)
	if ivHex != "" {
		fmt.Printf("iv: %s\n", ivHex)
	}
}
