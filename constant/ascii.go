package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
      _                                   
  ___| |__   __ _ _ __   ___ ___  _ ____   __
 / __| '_ \ / _' | '_ \ / __/ _ \| '_ \ \ / /
| (__| | | | (_| | |_) | (_| (_) | | | \ V / 
 \___|_| |_|\__,_| .__/ \___\___/|_| |_|\_/  
                 |_|                         `
