package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Read an image's size and description, or set the description",
	Long: `Print the natural size and description of an image or map element.

With --set-description, replace the description that assistive technology
reads for the image.`,
	RunE: runImage,
}

func init() {
	rootCmd.AddCommand(imageCmd)
	addTargetFlags(imageCmd)
	imageCmd.Flags().String("set-description", "", "New image description")
}

func runImage(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("set-description") {
		desc, _ := cmd.Flags().GetString("set-description")
		params := targetParams(cmd)
		params["description"] = desc
		return runStep("set-description", params)
	}

	sess, r, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	img, err := sess.Image(r)
	if err != nil {
		return err
	}
	return output.Print(img)
}
