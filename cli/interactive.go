package cli

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/theme"
)

func interactive(ctx context.Context) {
	prompt := promptui.Select{
		Label: "Select Action",
		Items: []string{"Toggle Experimental Mode", "Select Wheel", "Download Wheel", "Watch"},
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	switch result {
	case "Toggle Experimental Mode":
		toggle(-1)
	case "Select Wheel":
		promptSelectWheel()
	case "Download Wheel":
		promptDownloadWheel(ctx)
	case "Watch":
		watch()
	}
}

func promptSelectWheel() {
	wheels, err := theme.AvailableWheels(wheelsDir())
	if err != nil {
		fmt.Printf("Could not list wheels %v\n", err)
		return
	}

	prompt := promptui.Select{
		Label: "Select Wheel",
		Items: wheels,
	}
	_, wheel, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	if err := selectWheel(wheel); err != nil {
		fmt.Printf("Could not select wheel %v\n", err)
	}
}

func promptDownloadWheel(ctx context.Context) {
	prompt := promptui.Prompt{
		Label: "Wheel Name",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("a wheel name is required")
			}
			return nil
		},
	}
	wheel, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	_, memory := stores()
	if err := newDownloader(memory).Download(ctx, wheel); err != nil {
		fmt.Printf("Download failed %v\n", err)
		return
	}
	progress, _ := memory.Get(params.WHEEL_DOWNLOAD_PROGRESS)
	fmt.Println(string(progress))
}
