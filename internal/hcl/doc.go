// Package hcl provides the HCL implementation of config.Loader. It parses the
// optional iomapper settings file, evaluates its expressions against a small
// cty context, and overlays the result on config.Defaults(). It also renders
// a settings file holding the defaults.
//
//	paths {
//	  catalog  = "${config_dir}/IOModuleTypes.yml"
//	  hardware = "../../Hardware.hw"
//	}
//
//	filter {
//	  family  = "X20"
//	  exclude = ["X20TB", "X20BM"]
//	}
//
//	output {
//	  line_ending = "crlf"
//	}
//
// Expressions may reference env.<NAME> for process environment variables and
// config_dir for the directory holding the settings file.
package hcl
