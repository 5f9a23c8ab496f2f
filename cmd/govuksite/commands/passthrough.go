package commands

import (
	"path/filepath"

	"git.home.luguber.info/inful/govuksite/internal/config"
	"git.home.luguber.info/inful/govuksite/internal/passthrough"
)

// PassthroughCmd implements the 'passthrough' command.
type PassthroughCmd struct {
	Output  string `short:"o" help:"Build output directory" default:"_site" type:"path"`
	WorkDir string `name:"work-dir" help:"Resolve relative passthrough and input paths against this directory" type:"path"`
}

func (p *PassthroughCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(config.Resolve(root.Config))
	if err != nil {
		return err
	}
	rules := make([]string, 0, len(cfg.Generator.Passthrough))
	for _, rule := range cfg.Generator.Passthrough {
		rules = append(rules, inWorkDir(p.WorkDir, rule))
	}
	return passthrough.Copy(rules, inWorkDir(p.WorkDir, cfg.Generator.Input), p.Output)
}

// inWorkDir joins relative paths onto workDir; absolute paths and an empty workDir pass through.
func inWorkDir(workDir, p string) string {
	if workDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}
