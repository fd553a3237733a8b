// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aeondiff/aeondiff/internal/meta"
)

const bashCompletionScript = `# bash completion for aeondiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_aeondiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "dd fd ad ca completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --output -o --titles -t --out"

    case "$cmd" in
    dd)
      local opts="$common --old --new"
            ;;
        fd)
      local opts="$common --old --new"
            ;;
        ad)
      local opts="$common --in"
            ;;
        ca)
      local opts="$common --in --interactive -i"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

  if [[ "$prev" == "--old" || "$prev" == "--new" || "$prev" == "--out" ]]; then
    COMPREPLY=( $(compgen -o dirnames -- "$cur") )
    return 0
  fi

  if [[ "$prev" == "--in" ]]; then
    COMPREPLY=( $(compgen -o filenames -- "$cur") )
    return 0
  fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _aeondiff aeondiff
`

const zshCompletionScript = `#compdef aeondiff

_aeondiff() {
  local -a cmds
  cmds=(
    'dd:directory diff'
    'fd:file diff'
    'ad:aggregate diff'
    'ca:customization assessment'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--out[artifact output location]:directory:_directories'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'aeondiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    dd)
      _arguments -C \
        $common \
        '--old[old snapshot directory]:directory:_directories' \
        '--new[new snapshot directory]:directory:_directories'
      ;;
    fd)
      _arguments -C \
        $common \
        '--old[old file]:file:_files' \
        '--new[new file]:file:_files'
      ;;
    ad)
      _arguments -C \
        $common \
        '--in[structural-diff artifact]:file:_files'
      ;;
    ca)
      _arguments -C \
        $common \
        '--in[combined-diff artifact]:file:_files' \
        '(-i --interactive)'{-i,--interactive}'[browse hunks interactively]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _aeondiff aeondiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: aeondiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "aeondiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: completionCommandAction,
	}
}
