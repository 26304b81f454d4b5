package cli

const asciiLogo = `
  _   _ _ __ ___ | |__  _ __ ___| | | __ _
 | | | | '_ ` + "`" + ` _ \| '_ \| '__/ _ \ | |/ _` + "`" + ` |
 | |_| | | | | | | |_) | | |  __/ | | (_| |
  \__,_|_| |_| |_|_.__/|_|  \___|_|_|\__,_|`
