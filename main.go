// main.go - Main entry point for NXMock

/*
 ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀
 ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒
▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░
▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄
▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄
░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒
░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░░ ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░
   ░   ░ ░  ░    ░  ░      ░   ░ ░ ░ ▒  ░        ░ ░░ ░
         ░  ░    ░         ░       ░ ░  ░ ░      ░  ░

(c) 2026 The NXMock Authors
https://github.com/nxmock/nxmock
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ███▄    █ ▒██   ██▒ ███▄ ▄███▓ ▒█████   ▄████▄   ██ ▄█▀\033[0m\n\033[38;2;255;80;147m ██ ▀█   █ ▒▒ █ █ ▒░▓██▒▀█▀ ██▒▒██▒  ██▒▒██▀ ▀█   ██▄█▒\033[0m\n\033[38;2;255;140;147m▓██  ▀█ ██▒░░  █   ░▓██    ▓██░▒██░  ██▒▒▓█    ▄ ▓███▄░\033[0m\n\033[38;2;255;170;147m▓██▒  ▐▌██▒ ░ █ █ ▒ ▒██    ▒██ ▒██   ██░▒▓▓▄ ▄██▒▓██ █▄\033[0m\n\033[38;2;255;200;147m▒██░   ▓██░▒██▒ ▒██▒▒██▒   ░██▒░ ████▓▒░▒ ▓███▀ ░▒██▒ █▄\033[0m\n\033[38;2;255;230;147m░ ▒░   ▒ ▒ ▒▒ ░ ░▓ ░░ ▒░   ░  ░░ ▒░▒░▒░ ░ ░▒ ▒  ░▒ ▒▒ ▓▒\033[0m\n\033[38;2;255;255;147m░ ░░   ░ ▒░░░   ░▒ ░░  ░      ░░ ░ ▒ ▒░   ░  ▒   ░ ░▒ ▒░\033[0m")
	fmt.Println("\nA development-workstation mock of a bank-switched 8-bit home computer.")
	fmt.Println("(c) 2026 The NXMock Authors")
	fmt.Println("https://github.com/nxmock/nxmock")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
