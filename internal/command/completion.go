// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/envreport/internal/meta"
)

const bashCompletionScript = `# bash completion for envreport
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_envreport()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local opts="--output -o --profile --region --quiet -q --s3-uri --probe-timeout --dir -d --env-file --help --version"

    case "$prev" in
        --output|-o|--env-file)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
        --dir|-d)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
        --profile)
            COMPREPLY=( $(compgen -W "$(envreport profiles 2>/dev/null)" -- "$cur") )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "sections profiles completion" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _envreport envreport
`

const zshCompletionScript = `#compdef envreport

_envreport() {
  local -a cmds
  cmds=(
    'sections:list the report sections in order'
    'profiles:list the named AWS profiles'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then
    _describe -t commands 'envreport commands' cmds
    return
  fi

  case $words[2] in
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    sections|profiles)
      ;;
    *)
      _arguments -C \
        '(-o --output)'{-o,--output}'[report file]:file:_files' \
        '--profile[AWS profile]:profile:($(envreport profiles 2>/dev/null))' \
        '--region[AWS region]:region' \
        '(-q --quiet)'{-q,--quiet}'[do not echo the report]' \
        '--s3-uri[upload target]:uri' \
        '--probe-timeout[per probe timeout]:duration' \
        '(-d --dir)'{-d,--dir}'[directory to inspect]:directory:_directories' \
        '--env-file[dotenv file]:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _envreport envreport
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	w := stdout(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: envreport completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "envreport completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
