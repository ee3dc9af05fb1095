package main

// indexHTML takes the page title, the config fields, and the list of moves.
const indexHTML = `
<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
    <style type="text/css">
      canvas { border: 1px solid black; }
    </style>
    <script src="https://unpkg.com/zdog@1/dist/zdog.dist.js"></script>
  </head>
  <body>
    <canvas class="toolpath-view" width="600" height="600"></canvas>
    <script type="text/javascript">
document.title = %q

const config = {
%s
}

const cmds = [
%s
]
    </script>
    <script type="text/javascript">
let displaySize = 600;

let view = document.querySelector(".toolpath-view")

let illo = new Zdog.Illustration({
  element: view,
  scale: {x: 1.0, y: -1.0, z: 1.0},
  rotate: {x: 1.1, y: 0, z: -0.3},
  zoom: 10,
});

view.onwheel = function(event) {
  event.preventDefault()
  illo.zoom += (event.deltaY * 0.05)
  if (illo.zoom < 0.5) {
    illo.zoom = 0.5
  }
  animate()
}

let dragStartRX, dragStartRZ;
let isDragging = false;

new Zdog.Dragger({
  startElement: view,
  onDragStart: function() {
    dragStartRX = illo.rotate.x;
    dragStartRZ = illo.rotate.z;
    isDragging = true;
    animate();
  },
  onDragMove: function( pointer, moveX, moveY ) {
    illo.rotate.x = dragStartRX - ( moveY / displaySize * Zdog.TAU );
    illo.rotate.z = dragStartRZ - ( moveX / displaySize * Zdog.TAU );
  },
  onDragEnd: function () {
    isDragging = false;
  },
});

let bounds = {minX: 0, maxX: 0, minY: 0, maxY: 0}
for (cmd of cmds) {
  let pt = cmd.rapidTo !== undefined ? cmd.rapidTo : cmd.linearTo
  bounds.minX = Math.min(bounds.minX, pt.x)
  bounds.maxX = Math.max(bounds.maxX, pt.x)
  bounds.minY = Math.min(bounds.minY, pt.y)
  bounds.maxY = Math.max(bounds.maxY, pt.y)
}

let workspace = new Zdog.Anchor({
  addTo: illo,
  translate: {
    x: -(bounds.minX + bounds.maxX) / 2,
    y: -(bounds.minY + bounds.maxY) / 2,
  },
})

// Cut depth
new Zdog.Rect({
  addTo: workspace,
  width: bounds.maxX - bounds.minX,
  height: bounds.maxY - bounds.minY,
  translate: {
    x: (bounds.minX + bounds.maxX) / 2,
    y: (bounds.minY + bounds.maxY) / 2,
    z: config.cutDepth,
  },
  stroke: 0.01,
  color: 'grey',
})

// Axes
new Zdog.Shape({
  addTo: workspace,
  stroke: 0.1,
  color: 'red',
  path: [
    {x: -1, y: 0, z: 0},
    {x: 1, y: 0, z: 0},
  ],
})

new Zdog.Shape({
  addTo: workspace,
  stroke: 0.1,
  color: 'green',
  path: [
    {x: 0, y: -1, z: 0},
    {x: 0, y: 1, z: 0},
  ],
})

new Zdog.Shape({
  addTo: workspace,
  stroke: 0.1,
  color: 'blue',
  path: [
    {x: 0, y: 0, z: -1},
    {x: 0, y: 0, z: 1},
  ],
})

let curPt = config.startPos

function rapidTo(pt) {
  new Zdog.Shape({
    addTo: workspace,
    stroke: 0.02,
    color: 'red',
    path: [curPt, pt],
  })
  curPt = pt
}

function linearTo(pt) {
  new Zdog.Shape({
    addTo: workspace,
    stroke: 0.04,
    color: 'green',
    path: [curPt, pt],
  })
  curPt = pt
}

for (cmd of cmds) {
  if (cmd.rapidTo !== undefined) {
    rapidTo(cmd.rapidTo)
  } else if (cmd.linearTo !== undefined) {
    linearTo(cmd.linearTo)
  }
}

function animate() {
  illo.updateRenderGraph()
  if (isDragging) {
    requestAnimationFrame(animate)
  }
}
animate();
    </script>
 </body>
</html>
`
