package app

import (
	"fmt"

	"github.com/vk/packspec/internal/resolve"
	"github.com/vk/packspec/internal/specfile"
	"gopkg.in/yaml.v3"
)

// emit writes the resolved configuration to the output writer in the
// configured format.
func (a *App) emit(resolved *resolve.ResolvedConfig) error {
	switch a.config.Output {
	case OutputYAML:
		return a.emitYAML(resolved)
	default:
		_, err := a.outW.Write(specfile.Encode(resolved))
		return err
	}
}

// emitYAML renders the resolved configuration as a yaml mapping of sections
// to options, preserving declaration order via explicit yaml nodes.
func (a *App) emitYAML(resolved *resolve.ResolvedConfig) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, sectionName := range resolved.Sections() {
		sectionNode := &yaml.Node{Kind: yaml.MappingNode}
		for _, option := range resolved.Options(sectionName) {
			raw, _ := resolved.Raw(sectionName, option)

			var valueNode *yaml.Node
			if raw.IsList {
				valueNode = &yaml.Node{Kind: yaml.SequenceNode}
				for _, elem := range raw.Lines {
					valueNode.Content = append(valueNode.Content, scalarNode(elem))
				}
			} else {
				valueNode = scalarNode(raw.Scalar)
			}
			sectionNode.Content = append(sectionNode.Content, scalarNode(option), valueNode)
		}
		root.Content = append(root.Content, scalarNode(sectionName), sectionNode)
	}

	enc := yaml.NewEncoder(a.outW)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// scalarNode builds a yaml string scalar, quoted by the encoder as needed.
func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
