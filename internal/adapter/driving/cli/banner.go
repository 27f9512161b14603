package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/wlan-autoassign-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(ctx context.Context, versionStr string) {
	banner := `
 __      __.____       _____    _______       _____          __
/  \    /  \    |     /  _  \   \      \     /  _  \  __ ___/  |_  ____
\   \/\/   /    |    /  /_\  \  /   |   \   /  /_\  \|  |  \   __\/  _ \
 \        /|    |___/    |    \/    |    \ /    |    \  |  /|  | (  <_> )
  \__/\  / |_______ \____|__  /\____|__  / \____|__  /____/ |__|  \____/
       \/          \/       \/         \/          \/
        `
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(blue(fmt.Sprintf("WLAN Auto-Assign CLI (v%s)", version.FormatVersion())))

	go checkLatestVersion(ctx, versionStr)
}

// checkLatestVersion avisa quando existe uma release mais nova.
func checkLatestVersion(ctx context.Context, currentVersion string) {
	latest, newer := version.CheckLatestVersion(ctx, currentVersion)
	if !newer {
		return
	}
	pterm.Warning.Printfln("A new version of wlan-autoassign is available: %s", latest)
	pterm.Info.Println("Please update using: go install github.com/diillson/wlan-autoassign-go/cmd/wlan-autoassign@latest")
}
