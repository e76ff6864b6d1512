package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// prompter 抽象終端輸入，測試時以腳本取代 readline
type prompter interface {
	Line(prompt string) (string, error)
	Secret(prompt string) (string, error)
	Close() error
}

type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter() (prompter, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[1;36m>\033[0m ",
		HistoryFile:       filepath.Join(home, ".drinks_kiosk_history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %v", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

// Line 讀取一行；Ctrl+C 視同 EOF
func (p *readlinePrompter) Line(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret 遮罩輸入且不寫入歷史紀錄
func (p *readlinePrompter) Secret(prompt string) (string, error) {
	b, err := p.rl.ReadPassword(prompt)
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}
