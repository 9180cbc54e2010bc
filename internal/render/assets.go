package render

import "fmt"

const html2canvasTag = `<script src="https://html2canvas.hertzen.com/dist/html2canvas.min.js"></script>`

const pageCSS = `<style>
.network-container {
    max-width: 1200px;
    width: 100%;
    margin: 0 auto;
    padding: 0;
    display: flex;
    flex-direction: column;
    align-items: center;
    background-color: #f9f9f9;
}
.header-container {
    text-align: center;
    margin-bottom: 20px;
    width: 100%;
}
.main-title { color: #333; font-size: 24px; margin-bottom: 10px; }
.subtitle { color: #666; font-size: 16px; }
#mynetwork {
    width: 1000px !important;
    height: 800px !important;
    margin: 0 auto !important;
    border: none !important;
}
.legend-container {
    position: absolute;
    top: 20px;
    left: 20px;
    background-color: white;
    padding: 15px;
    border-radius: 5px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    z-index: 1000;
    max-width: 220px;
    font-size: 14px;
}
.legend-title { text-align: center; margin-bottom: 10px; font-weight: bold; }
.legend-item { display: flex; align-items: center; margin-bottom: 5px; }
.legend-color { width: 15px; height: 15px; border-radius: 50%; margin-right: 10px; }
.legend-section { margin-top: 10px; font-weight: bold; }
.legend-info { margin-top: 10px; font-size: 12px; }
.legend-controls { margin-top: 10px; border-top: 1px solid #eee; padding-top: 10px; font-size: 12px; }
.controls-title { font-weight: bold; margin-bottom: 5px; }
.status-indicator {
    position: absolute;
    bottom: 70px;
    left: 20px;
    background-color: rgba(255, 255, 255, 0.9);
    padding: 8px 14px;
    border-radius: 5px;
    font-size: 14px;
    font-weight: bold;
    z-index: 1000;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}
.status-indicator.frozen { color: #2196F3; border-left: 4px solid #2196F3; }
.status-indicator.active { color: #4CAF50; border-left: 4px solid #4CAF50; }
.status-indicator.error { color: #F44336; border-left: 4px solid #F44336; }
.control-buttons {
    position: absolute;
    bottom: 20px;
    left: 20px;
    z-index: 1000;
    display: flex;
    flex-wrap: wrap;
    gap: 8px;
}
.control-buttons button {
    padding: 8px 12px;
    color: white;
    border: none;
    border-radius: 5px;
    cursor: pointer;
    font-weight: bold;
    box-shadow: 0 2px 5px rgba(0,0,0,0.2);
}
#cluster-btn { background-color: #9C27B0; }
#expand-btn { background-color: #FF9800; }
#reset-btn { background-color: #607D8B; }
#freeze-btn { background-color: #2196F3; }
#unfreeze-btn { background-color: #4CAF50; }
.control-buttons button:hover { filter: brightness(1.1); }
.download-buttons {
    position: absolute;
    top: 20px;
    right: 20px;
    z-index: 1000;
    display: flex;
}
#download-btn, #download-hires-btn {
    padding: 8px 12px;
    color: white;
    border: none;
    border-radius: 5px;
    cursor: pointer;
    font-weight: bold;
}
#download-btn { background-color: #4CAF50; margin-right: 10px; }
#download-hires-btn { background-color: #2196F3; }
</style>`

const statusIndicatorHTML = `<div id="physics-status" class="status-indicator frozen">Physics: Off, Drag Nodes Freely</div>`

const controlButtonsHTML = `<div class="control-buttons">
<button id="cluster-btn">Reposition Nodes</button>
<button id="expand-btn">Expand Layout</button>
<button id="reset-btn">Reset &amp; Stabilize</button>
<button id="freeze-btn">Fix All Positions</button>
<button id="unfreeze-btn">Enable Dragging</button>
</div>`

const downloadButtonsHTML = `<div class="download-buttons">
<button id="download-btn">Download PNG</button>
<button id="download-hires-btn">Download Hi-Res PNG</button>
</div>`

const controlScript = `<script>
var savedPositions = {};
var isPhysicsEnabled = false;

function updatePhysicsStatus(enabled) {
    var el = document.getElementById('physics-status');
    if (!el) return;
    if (enabled) {
        el.textContent = 'Physics: Active, Stabilizing...';
        el.className = 'status-indicator active';
    } else {
        el.textContent = 'Physics: Off, Drag Nodes Freely';
        el.className = 'status-indicator frozen';
    }
}

function savePositions() {
    if (window.network) savedPositions = network.getPositions();
}

function setPhysics(enabled, params) {
    if (!window.network) return;
    var options = enabled && params ? {physics: {enabled: true, barnesHut: params}} : {physics: enabled};
    network.setOptions(options);
    isPhysicsEnabled = enabled;
    updatePhysicsStatus(enabled);
    if (enabled) network.stabilize(100);
}

function forEachNode(fn) {
    if (!window.network) return;
    var ds = network.body.data.nodes;
    ds.getIds().forEach(function(id) { fn(ds, id); });
}

document.addEventListener('DOMContentLoaded', function() {
    setTimeout(function() {
        if (!window.network) {
            var el = document.getElementById('physics-status');
            if (el) { el.textContent = 'Error: Network not initialized'; el.className = 'status-indicator error'; }
            return;
        }
        savePositions();
        updatePhysicsStatus(isPhysicsEnabled);
        document.getElementById('cluster-btn').addEventListener('click', function() {
            setPhysics(true, {gravitationalConstant: -500, centralGravity: 0.4, springLength: 50, springConstant: 0.3});
        });
        document.getElementById('expand-btn').addEventListener('click', function() {
            setPhysics(true, {gravitationalConstant: -50, centralGravity: 0.05, springLength: 200, springConstant: 0.05});
        });
        document.getElementById('reset-btn').addEventListener('click', function() {
            forEachNode(function(ds, id) {
                var pos = savedPositions[id];
                if (pos) ds.update({id: id, x: pos.x, y: pos.y, fixed: {x: true, y: true}});
            });
            network.fit();
            setPhysics(false);
        });
        document.getElementById('freeze-btn').addEventListener('click', function() {
            savePositions();
            forEachNode(function(ds, id) {
                var pos = savedPositions[id];
                if (pos) ds.update({id: id, x: pos.x, y: pos.y, fixed: {x: true, y: true}});
            });
            updatePhysicsStatus(false);
        });
        document.getElementById('unfreeze-btn').addEventListener('click', function() {
            forEachNode(function(ds, id) {
                ds.update({id: id, fixed: {x: false, y: false}});
            });
            updatePhysicsStatus(true);
        });
    }, 500);
});
</script>`

func downloadScript(filename string) string {
	return fmt.Sprintf(`<script>
function downloadNetworkImage(scaleFactor) {
    var page = document.querySelector('body');
    if (!page) {
        alert('Could not find the visualization. Please wait until it is fully loaded.');
        return;
    }
    var hidden = ['.download-buttons', '.control-buttons', '.status-indicator'].map(function(sel) {
        return document.querySelector(sel);
    });
    hidden.forEach(function(el) { if (el) el.style.display = 'none'; });
    html2canvas(page, {scale: scaleFactor, backgroundColor: '#f9f9f9', logging: false, allowTaint: true, useCORS: true}).then(function(canvas) {
        var link = document.createElement('a');
        link.href = canvas.toDataURL('image/png');
        link.download = scaleFactor > 1.0 ? '%[1]s_hires.png' : '%[1]s.png';
        document.body.appendChild(link);
        link.click();
        document.body.removeChild(link);
        hidden.forEach(function(el) { if (el) el.style.display = ''; });
    });
}
document.getElementById('download-btn').addEventListener('click', function() { downloadNetworkImage(1.0); });
document.getElementById('download-hires-btn').addEventListener('click', function() { downloadNetworkImage(3.0); });
</script>`, filename)
}
