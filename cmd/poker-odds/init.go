package main

import "fmt"

// InitCmd writes the current configuration, defaults included, as HCL.
type InitCmd struct {
	Force  bool `short:"f" help:"Overwrite an existing file"`
	Stdout bool `help:"Print the configuration instead of writing it"`
}

func (c *InitCmd) Run(a *app) error {
	if c.Stdout {
		_, err := a.out.Write(a.cfg.Encode())
		return err
	}
	if err := a.cfg.Save(a.configPath, c.Force); err != nil {
		return err
	}
	a.logger.Info("configuration written", "file", a.configPath)
	fmt.Fprintf(a.out, "wrote %s\n", a.configPath)
	return nil
}
