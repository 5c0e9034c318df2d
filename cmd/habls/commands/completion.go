package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:
  $ source <(habls completion bash)

Zsh:
  $ habls completion zsh > "${fpath[1]}/_habls"

Fish:
  $ habls completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			fmt.Print(humanBashCompletion)
		case "zsh":
			rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			rootCmd.GenPowerShellCompletion(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// humanBashCompletion is a handcrafted, minimal bash completion script
// that avoids the robotic verbosity of auto-generated ones.
const humanBashCompletion = `
# habls bash completion

_habls_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="environments completion update help"

    case "${prev}" in
        completion)
             COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- ${cur}) )
             return 0
             ;;
        --env|-e)
             # Standard tiers; local config may define more.
             COMPREPLY=( $(compgen -W "int stg prd" -- ${cur}) )
             return 0
             ;;
        *)
            ;;
    esac

    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--env --long --ip --via-gcloud --config --verbose --help --version" -- ${cur}) )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
}

complete -F _habls_completion habls
`
